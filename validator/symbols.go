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

// Package validator implements the three-pass semantic layer: pass 1 builds
// a global symbol table across every parsed file, pass 2 resolves type
// references against it, and pass 3 runs the structural checks
// (uniqueness, oneway, direction, import hygiene).
package validator

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/aidl-tools/aidl/ast"
)

// definition is what a qualified name resolves to in the global symbol
// table: which file declared it (or the synthetic builtin key) and what
// kind of item it is.
type definition struct {
	FileKey string
	Kind    ast.ItemKind
}

// builtinAndroidTypes are opaque parcelable-like references that every
// AIDL file may use without an import, per spec.md's TypeKind.Resolved
// (BuiltinAndroid) case.
var builtinAndroidTypes = []string{
	"android.os.IBinder",
	"android.os.Parcelable",
	"android.os.ParcelableHolder",
	"android.os.ParcelFileDescriptor",
	"android.os.PersistableBundle",
	"android.os.StrictMode",
	"java.io.FileDescriptor",
}

// symbolTable is the qualified-name -> definition map described in
// spec.md §4.4, backed by an adaptive radix tree keyed on the UTF-8 bytes
// of the qualified name.
type symbolTable struct {
	tree art.Tree
}

func newSymbolTable() *symbolTable {
	t := &symbolTable{tree: art.New()}
	t.seedBuiltins()
	return t
}

func (t *symbolTable) seedBuiltins() {
	for _, fqn := range builtinAndroidTypes {
		def := definition{FileKey: ast.BuiltinFileKey, Kind: ast.ItemKindBuiltinAndroid}
		t.insertIfAbsent(fqn, def)
		simple := simpleName(fqn)
		t.insertIfAbsent(simple, def)
	}
}

// insertIfAbsent records qn -> def only if qn is not already present: the
// first file to claim a qualified name wins, matching spec.md's determinism
// requirement regardless of map/goroutine iteration order (callers must
// still process files in a stable order before calling insertIfAbsent).
func (t *symbolTable) insertIfAbsent(qn string, def definition) bool {
	if _, found := t.tree.Search(art.Key(qn)); found {
		return false
	}
	t.tree.Insert(art.Key(qn), def)
	return true
}

func (t *symbolTable) lookup(qn string) (definition, bool) {
	v, found := t.tree.Search(art.Key(qn))
	if !found {
		return definition{}, false
	}
	return v.(definition), true
}

func simpleName(qualified string) string {
	idx := -1
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '.' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return qualified
	}
	return qualified[idx+1:]
}

// buildSymbolTable runs pass 1: for every file, in the stable order given
// by keys, insert its item's qualified name and every declared
// parcelable's qualified name.
func buildSymbolTable(keys []string, files map[string]*ast.Aidl) *symbolTable {
	st := newSymbolTable()
	for _, key := range keys {
		f := files[key]
		if f == nil {
			continue
		}
		if f.Item != nil {
			st.insertIfAbsent(f.QualifiedItemName(), definition{FileKey: key, Kind: f.Item.ItemKind()})
		}
		for _, dp := range f.DeclaredParcelables {
			qn := dp.QualifiedName()
			if f.Package != nil && f.Package.Name != "" && dp.Path == "" {
				qn = f.Package.Name + "." + dp.Name
			}
			st.insertIfAbsent(qn, definition{FileKey: key, Kind: ast.ItemKindDeclaredParcelable})
		}
	}
	return st
}
