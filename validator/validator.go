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

package validator

import (
	"sort"

	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/reporter"
)

// Validate runs all three validator passes across every successfully-parsed
// file in files: it builds one global symbol table (pass 1), then resolves types
// and runs the structural checks (passes 2 and 3) file by file. Files are
// visited in sorted key order so that symbol-table insertion order, and
// therefore every diagnostic produced, is independent of map iteration
// order or the order pass 1's goroutines happened to finish in.
func Validate(files map[string]*ast.Aidl, handler *reporter.Handler) {
	keys := make([]string, 0, len(files))
	for k, f := range files {
		if f != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	st := buildSymbolTable(keys, files)

	for _, key := range keys {
		resolveFileTypes(key, files[key], st, handler)
	}
	for _, key := range keys {
		checkFile(key, files[key], st, handler)
	}
}
