// Copyright 2024 The AIDL Tools Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter collects diagnostics produced while lexing, parsing, and
// validating AIDL source. Unlike a typical error-reporting package, nothing
// here can abort a caller's Validate call: the API contract is that
// Parser.Validate never fails, so Handler only accumulates.
package reporter

import (
	"fmt"
	"sync"

	"github.com/aidl-tools/aidl/ast"
)

// Handler accumulates diagnostics across every file registered with a
// single Parser.Validate call. It is safe for concurrent use so that pass
// 1 (lex+parse) can run one goroutine per file.
type Handler struct {
	mu         sync.Mutex
	byFile     map[string][]ast.Diagnostic
	errorCount int
	warnCount  int
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{byFile: make(map[string][]ast.Diagnostic)}
}

// HandleDiagnostic records d against fileKey and updates the running
// counters.
func (h *Handler) HandleDiagnostic(fileKey string, d ast.Diagnostic) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.byFile[fileKey] = append(h.byFile[fileKey], d)
	if d.Kind == ast.Warning {
		h.warnCount++
	} else {
		h.errorCount++
	}
}

// Errorf records an error-kind diagnostic built from a range and message.
func (h *Handler) Errorf(fileKey string, r ast.Range, format string, args ...any) {
	h.HandleDiagnostic(fileKey, ast.Diagnostic{Kind: ast.Error, Range: r, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-kind diagnostic built from a range and message.
func (h *Handler) Warnf(fileKey string, r ast.Range, format string, args ...any) {
	h.HandleDiagnostic(fileKey, ast.Diagnostic{Kind: ast.Warning, Range: r, Message: fmt.Sprintf(format, args...)})
}

// Diagnostics returns the diagnostics recorded for fileKey, in emission
// order. The returned slice is a copy; callers may not have registered any
// diagnostics for fileKey, in which case nil is returned.
func (h *Handler) Diagnostics(fileKey string) []ast.Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()
	d := h.byFile[fileKey]
	if d == nil {
		return nil
	}
	out := make([]ast.Diagnostic, len(d))
	copy(out, d)
	return out
}

// ErrorCount returns the number of error-kind diagnostics recorded so far.
func (h *Handler) ErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errorCount
}

// WarningCount returns the number of warning-kind diagnostics recorded so
// far.
func (h *Handler) WarningCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.warnCount
}
