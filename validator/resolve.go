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
	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/reporter"
	"github.com/aidl-tools/aidl/walk"
)

// resolveFileTypes runs pass 2 for one file: every Type node of kind
// Custom is looked up in order (a) exact qualified name, (b) via an
// import's simple name, (c) within the local package, attaching
// Definition and relabeling Kind to Resolved on success, or leaving Kind
// Unresolved and emitting a warning on failure.
func resolveFileTypes(fileKey string, f *ast.Aidl, st *symbolTable, handler *reporter.Handler) {
	walk.WalkSymbols(f, walk.TypesOnly, func(sym walk.Symbol) {
		t, ok := sym.Node.(*ast.Type)
		if !ok || t.Kind != ast.KindCustom {
			return
		}
		resolveType(fileKey, f, t, st, handler)
	})
}

func resolveType(fileKey string, f *ast.Aidl, t *ast.Type, st *symbolTable, handler *reporter.Handler) {
	if qn, def, ok := lookupCustomType(f, t.Name, st); ok {
		t.Kind = ast.KindResolved
		t.Definition = &ast.Resolution{FileKey: def.FileKey, QualifiedName: qn, Kind: def.Kind}
		return
	}
	t.Kind = ast.KindUnresolved
	handler.Warnf(fileKey, t.SymbolRange, "Unresolved type")
}

// lookupCustomType implements the three-step search order from spec.md
// §4.4 without mutating anything, so it can be reused by structural
// checks (e.g. "Unused import") that need to know what an import resolves
// to without re-deriving the search.
func lookupCustomType(f *ast.Aidl, name string, st *symbolTable) (string, definition, bool) {
	if def, ok := st.lookup(name); ok {
		return name, def, true
	}
	for _, imp := range f.Imports {
		if imp.Name == name {
			if def, ok := st.lookup(imp.QualifiedName()); ok {
				return imp.QualifiedName(), def, true
			}
		}
	}
	if f.Package != nil && f.Package.Name != "" {
		candidate := f.Package.Name + "." + name
		if def, ok := st.lookup(candidate); ok {
			return candidate, def, true
		}
	}
	return "", definition{}, false
}
