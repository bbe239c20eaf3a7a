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

// Package aidl is the public entry point: register file contents with a
// Parser, then call Validate to get back a parsed and semantically checked
// result per file. Parsing and validating never return a Go error for
// malformed AIDL source; every problem is surfaced as a Diagnostic
// attached to the file it was found in.
package aidl

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/parser"
	"github.com/aidl-tools/aidl/reporter"
	"github.com/aidl-tools/aidl/validator"
)

// ParseFileResult is what Parser.Validate returns for a single registered
// file: its AST, or nil if it could not be recovered at all, alongside
// every diagnostic recorded against it across all three passes.
type ParseFileResult struct {
	AST         *ast.Aidl
	Diagnostics []ast.Diagnostic
}

// Parser accumulates file contents to validate together as one unit: types
// declared in one file are visible to every other file registered on the
// same Parser. AddContent and Validate take an internal lock, so they may
// be called from several goroutines; Validate itself also parses files
// concurrently internally.
type Parser struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewParser returns an empty Parser.
func NewParser() *Parser {
	return &Parser{files: make(map[string][]byte)}
}

// AddContent registers the raw bytes of one AIDL file under key. Calling
// AddContent again with a key already in use replaces its content.
func (p *Parser) AddContent(key string, content []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[key] = content
}

// Validate lexes, parses, and semantically checks every file registered
// with AddContent, and returns one ParseFileResult per key. It never
// returns an error of its own: ctx cancellation only stops pass 1 early,
// surfacing whatever partial set of ASTs had already been built by the
// time it was cancelled.
func (p *Parser) Validate(ctx context.Context) map[string]ParseFileResult {
	p.mu.Lock()
	keys := make([]string, 0, len(p.files))
	contents := make(map[string][]byte, len(p.files))
	for k, v := range p.files {
		keys = append(keys, k)
		contents[k] = v
	}
	p.mu.Unlock()
	sort.Strings(keys)

	handler := reporter.NewHandler()
	asts := parseAll(ctx, keys, contents, handler)

	validator.Validate(asts, handler)

	out := make(map[string]ParseFileResult, len(keys))
	for _, k := range keys {
		out[k] = ParseFileResult{AST: asts[k], Diagnostics: handler.Diagnostics(k)}
	}
	return out
}

// parseAll runs pass 1 (lex+parse) for every file concurrently, bounded to
// GOMAXPROCS workers at a time. A panic while parsing a single file is
// recovered and turned into an "Invalid item" diagnostic plus a logged
// error, so one malformed file can never bring down the whole batch.
func parseAll(ctx context.Context, keys []string, contents map[string][]byte, handler *reporter.Handler) map[string]*ast.Aidl {
	results := make(map[string]*ast.Aidl, len(keys))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(max(1, runtime.GOMAXPROCS(0))))

	for _, key := range keys {
		key := key
		content := contents[key]
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			a := parseOneFile(key, content, handler)
			mu.Lock()
			results[key] = a
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func parseOneFile(key string, content []byte, handler *reporter.Handler) (a *ast.Aidl) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while parsing AIDL file", "file", key, "panic", r)
			handler.Errorf(key, ast.Range{}, "Invalid item")
			a = nil
		}
	}()
	return parser.Parse(key, content, handler)
}
