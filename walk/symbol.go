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

// Package walk provides a read-only, deterministic-order traversal and
// query layer over a parsed *ast.Aidl: walking, filtering, predicate
// search, and locating the symbol enclosing a given line/column.
package walk

import "github.com/aidl-tools/aidl/ast"

// Kind tags which concrete AST type a Symbol wraps.
type Kind int

const (
	KindPackage Kind = iota
	KindImport
	KindInterface
	KindMethod
	KindArg
	KindConst
	KindParcelable
	KindField
	KindEnum
	KindEnumElement
	KindType
)

// Filter selects which symbol kinds a traversal or query call should
// consider. The universe is still walked in full regardless of the
// filter; only the set of symbols passed to the caller differs.
type Filter int

const (
	// All matches every symbol kind.
	All Filter = iota
	// ItemsOnly matches only the file's single top-level Interface,
	// Parcelable, or Enum.
	ItemsOnly
	// ItemsAndItemElements matches items plus their direct elements:
	// Method, Const, Field, EnumElement.
	ItemsAndItemElements
	// TypesOnly matches Type symbols, including nested generic/array
	// element types.
	TypesOnly
	// ParametersOnly matches method Arg symbols.
	ParametersOnly
)

func matchesFilter(k Kind, f Filter) bool {
	switch f {
	case All:
		return true
	case ItemsOnly:
		return k == KindInterface || k == KindParcelable || k == KindEnum
	case ItemsAndItemElements:
		switch k {
		case KindInterface, KindParcelable, KindEnum, KindMethod, KindConst, KindField, KindEnumElement:
			return true
		}
		return false
	case TypesOnly:
		return k == KindType
	case ParametersOnly:
		return k == KindArg
	default:
		return false
	}
}

// Symbol is a tagged reference to one named node in an Aidl AST. It never
// outlives, nor mutates, the tree it was produced from.
type Symbol struct {
	Kind          Kind
	Node          ast.Node
	qualifiedName string
}

// GetSymbolRange returns the range of the node's identifier.
func (s Symbol) GetSymbolRange() ast.Range { return s.Node.GetSymbolRange() }

// GetFullRange returns the range of the node's whole declaration.
func (s Symbol) GetFullRange() ast.Range { return s.Node.GetFullRange() }

// GetQualifiedName returns the dotted chain of enclosing names down to
// this symbol: package.Name for top-level items, and
// itemQualifiedName + "." + elementName for methods, args, consts, fields
// and enum elements nested within one. Package and Import symbols carry
// their own dotted name, and Type symbols carry the type name as written.
func (s Symbol) GetQualifiedName() string { return s.qualifiedName }

// GetName returns the symbol's own (unqualified) name, or false for an
// unnamed Arg.
func (s Symbol) GetName() (string, bool) {
	switch n := s.Node.(type) {
	case *ast.Package:
		return n.Name, true
	case *ast.Import:
		return n.Name, true
	case *ast.Interface:
		return n.Name, true
	case *ast.Method:
		return n.Name, true
	case *ast.Arg:
		if n.Name != nil {
			return *n.Name, true
		}
		return "", false
	case *ast.Const:
		return n.Name, true
	case *ast.Parcelable:
		return n.Name, true
	case *ast.Field:
		return n.Name, true
	case *ast.Enum:
		return n.Name, true
	case *ast.EnumElement:
		return n.Name, true
	case *ast.Type:
		return n.Name, true
	default:
		return "", false
	}
}
