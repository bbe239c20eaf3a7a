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

// checkFile runs pass 3 (the structural checks) for one already
// type-resolved file.
func checkFile(fileKey string, f *ast.Aidl, st *symbolTable, handler *reporter.Handler) {
	checkImports(fileKey, f, st, handler)
	checkTypeShapes(fileKey, f, handler)
	switch it := f.Item.(type) {
	case *ast.Interface:
		checkInterface(fileKey, it, handler)
	case *ast.Parcelable:
		checkParcelable(fileKey, it, handler)
	case *ast.Enum:
		checkEnum(fileKey, it, handler)
	}
}

func checkImports(fileKey string, f *ast.Aidl, st *symbolTable, handler *reporter.Handler) {
	seen := map[string]*ast.Import{}
	referenced := map[string]bool{}
	walk.WalkSymbols(f, walk.TypesOnly, func(sym walk.Symbol) {
		if t, ok := sym.Node.(*ast.Type); ok {
			referenced[t.Name] = true
		}
	})

	for _, imp := range f.Imports {
		qn := imp.QualifiedName()
		if first, dup := seen[qn]; dup {
			handler.HandleDiagnostic(fileKey, ast.Diagnostic{
				Kind:    ast.Error,
				Range:   imp.FullRange,
				Message: "Duplicated import",
				RelatedInfos: []ast.RelatedInfo{
					{Range: first.FullRange, Message: "previously imported here", FileKey: fileKey},
				},
			})
			continue
		}
		seen[qn] = imp

		if _, ok := st.lookup(qn); !ok {
			handler.Errorf(fileKey, imp.FullRange, "Unresolved import")
			continue
		}
		if !referenced[imp.Name] {
			handler.Warnf(fileKey, imp.FullRange, "Unused import")
		}
	}
}

// checkTypeShapes flags generic arguments and array elements that cannot
// actually be marshalled the way they are declared.
func checkTypeShapes(fileKey string, f *ast.Aidl, handler *reporter.Handler) {
	walk.WalkSymbols(f, walk.TypesOnly, func(sym walk.Symbol) {
		t, ok := sym.Node.(*ast.Type)
		if !ok {
			return
		}
		switch t.Kind {
		case ast.KindList:
			if len(t.GenericTypes) == 1 && t.GenericTypes[0].Kind == ast.KindPrimitive {
				handler.Errorf(fileKey, t.GenericTypes[0].SymbolRange, "List parameter must be an object")
			}
		case ast.KindMap:
			for _, g := range t.GenericTypes {
				if g.Kind == ast.KindPrimitive {
					handler.Errorf(fileKey, g.SymbolRange, "Map parameter must be an object")
				}
			}
		case ast.KindArray:
			if el := t.ElementType(); el != nil && (el.Kind == ast.KindList || el.Kind == ast.KindMap) {
				handler.Warnf(fileKey, el.SymbolRange, "Array element must be a primitive or enum")
			}
		}
	})
}

func checkInterface(fileKey string, iface *ast.Interface, handler *reporter.Handler) {
	methods := iface.Methods()

	seenNames := map[string]*ast.Method{}
	seenCodes := map[int]*ast.Method{}
	var firstHasCode *bool

	for _, m := range methods {
		if first, dup := seenNames[m.Name]; dup {
			handler.HandleDiagnostic(fileKey, ast.Diagnostic{
				Kind:    ast.Error,
				Range:   m.SymbolRange,
				Message: "Duplicated method name",
				RelatedInfos: []ast.RelatedInfo{
					{Range: first.SymbolRange, Message: "previously declared here", FileKey: fileKey},
				},
			})
		} else {
			seenNames[m.Name] = m
		}

		hasCode := m.TransactCode != nil
		if firstHasCode == nil {
			firstHasCode = &hasCode
		} else if hasCode != *firstHasCode {
			handler.Errorf(fileKey, m.SymbolRange, "Mixed methods with and without id")
		}

		if hasCode {
			code := *m.TransactCode
			if first, dup := seenCodes[code]; dup {
				handler.HandleDiagnostic(fileKey, ast.Diagnostic{
					Kind:    ast.Error,
					Range:   m.TransactCodeRange,
					Message: "Duplicated method id",
					RelatedInfos: []ast.RelatedInfo{
						{Range: first.TransactCodeRange, Message: "previously used here", FileKey: fileKey},
					},
				})
			} else {
				seenCodes[code] = m
			}
		}

		checkMethodOnewayAndDirections(fileKey, iface, m, handler)
	}
}

func checkMethodOnewayAndDirections(fileKey string, iface *ast.Interface, m *ast.Method, handler *reporter.Handler) {
	oneway := m.EffectiveOneway(iface)

	if oneway && m.ReturnType != nil && m.ReturnType.Kind != ast.KindVoid {
		r := m.OnewayRange
		if !m.Oneway {
			// the method is oneway only because the interface is; point at
			// the method name, since it has no oneway keyword of its own.
			r = m.SymbolRange
		}
		handler.Errorf(fileKey, r, "Oneway method must return void")
	}

	for _, arg := range m.Args {
		checkArgDirection(fileKey, arg, handler)
		if oneway && (arg.Direction.Kind == ast.DirectionOut || arg.Direction.Kind == ast.DirectionInOut) {
			handler.Errorf(fileKey, arg.SymbolRange, "Oneway method cannot have out/inout args")
		}
	}
}

func checkArgDirection(fileKey string, arg *ast.Arg, handler *reporter.Handler) {
	if arg.ArgType == nil {
		return
	}
	if isScalarArgType(arg.ArgType) {
		if arg.Direction.Kind == ast.DirectionOut || arg.Direction.Kind == ast.DirectionInOut {
			handler.Errorf(fileKey, arg.Direction.Range, "Primitive argument cannot be out/inout")
		}
		return
	}
	if arg.Direction.Kind == ast.DirectionUnspecified {
		handler.Errorf(fileKey, arg.SymbolRange, "Direction required for non-primitive argument")
	}
}

func isScalarArgType(t *ast.Type) bool {
	if t.Kind.IsScalar() {
		return true
	}
	if t.Kind == ast.KindResolved && t.Definition != nil && t.Definition.Kind == ast.ItemKindEnum {
		return true
	}
	return false
}

func checkParcelable(fileKey string, p *ast.Parcelable, handler *reporter.Handler) {
	seen := map[string]*ast.Field{}
	for _, f := range p.Fields() {
		if first, dup := seen[f.Name]; dup {
			handler.HandleDiagnostic(fileKey, ast.Diagnostic{
				Kind:    ast.Error,
				Range:   f.SymbolRange,
				Message: "Duplicated field",
				RelatedInfos: []ast.RelatedInfo{
					{Range: first.SymbolRange, Message: "previously declared here", FileKey: fileKey},
				},
			})
			continue
		}
		seen[f.Name] = f
	}
}

func checkEnum(fileKey string, e *ast.Enum, handler *reporter.Handler) {
	seen := map[string]*ast.EnumElement{}
	for _, el := range e.Elements {
		if first, dup := seen[el.Name]; dup {
			handler.HandleDiagnostic(fileKey, ast.Diagnostic{
				Kind:    ast.Error,
				Range:   el.SymbolRange,
				Message: "Duplicated enum element",
				RelatedInfos: []ast.RelatedInfo{
					{Range: first.SymbolRange, Message: "previously declared here", FileKey: fileKey},
				},
			})
			continue
		}
		seen[el.Name] = el
	}
}
