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

package walk

import "github.com/aidl-tools/aidl/ast"

// record augments a Symbol with the bookkeeping needed to answer
// FindSymbolAtLineCol's innermost/deepest/latest tie-break rule
// without exposing that bookkeeping on the public Symbol type.
type record struct {
	sym   Symbol
	depth int
	order int
}

// collector performs one full depth-first, parents-before-children walk
// of an Aidl AST in source order, regardless of any filter: filters only
// decide which collected records a caller ultimately sees.
type collector struct {
	out []record
}

func collect(a *ast.Aidl) []record {
	c := &collector{}
	if a == nil {
		return nil
	}
	if a.Package != nil {
		c.emit(KindPackage, a.Package, 0, a.Package.Name)
	}
	for _, imp := range a.Imports {
		c.emit(KindImport, imp, 0, imp.QualifiedName())
	}
	if a.Item != nil {
		itemQN := a.QualifiedItemName()
		switch it := a.Item.(type) {
		case *ast.Interface:
			c.walkInterface(it, 0, itemQN)
		case *ast.Parcelable:
			c.walkParcelable(it, 0, itemQN)
		case *ast.Enum:
			c.walkEnum(it, 0, itemQN)
		}
	}
	return c.out
}

func (c *collector) emit(kind Kind, node ast.Node, depth int, qn string) {
	c.out = append(c.out, record{
		sym:   Symbol{Kind: kind, Node: node, qualifiedName: qn},
		depth: depth,
		order: len(c.out),
	})
}

func childName(name string, ok bool, fallback string) string {
	if ok {
		return name
	}
	return fallback
}

func (c *collector) walkInterface(it *ast.Interface, depth int, qn string) {
	c.emit(KindInterface, it, depth, qn)
	for _, el := range it.Elements {
		switch e := el.(type) {
		case *ast.Method:
			c.walkMethod(e, depth+1, qn)
		case *ast.Const:
			c.walkConst(e, depth+1, qn)
		}
	}
}

func (c *collector) walkMethod(m *ast.Method, depth int, parentQN string) {
	mqn := parentQN + "." + m.Name
	c.emit(KindMethod, m, depth, mqn)
	c.walkType(m.ReturnType, depth+1, mqn)
	for i, arg := range m.Args {
		name := childName(arg.GetName(), arg.Name != nil, syntheticArgName(i))
		aqn := mqn + "." + name
		c.emit(KindArg, arg, depth+1, aqn)
		c.walkType(arg.ArgType, depth+2, aqn)
	}
}

func syntheticArgName(i int) string {
	digits := "0123456789"
	if i < 10 {
		return "$" + string(digits[i])
	}
	return "$arg"
}

func (c *collector) walkConst(cst *ast.Const, depth int, parentQN string) {
	cqn := parentQN + "." + cst.Name
	c.emit(KindConst, cst, depth, cqn)
	c.walkType(cst.ConstType, depth+1, cqn)
}

func (c *collector) walkParcelable(p *ast.Parcelable, depth int, qn string) {
	c.emit(KindParcelable, p, depth, qn)
	for _, el := range p.Elements {
		switch e := el.(type) {
		case *ast.Field:
			c.walkField(e, depth+1, qn)
		case *ast.Const:
			c.walkConst(e, depth+1, qn)
		}
	}
}

func (c *collector) walkField(f *ast.Field, depth int, parentQN string) {
	fqn := parentQN + "." + f.Name
	c.emit(KindField, f, depth, fqn)
	c.walkType(f.FieldType, depth+1, fqn)
}

func (c *collector) walkEnum(e *ast.Enum, depth int, qn string) {
	c.emit(KindEnum, e, depth, qn)
	for _, el := range e.Elements {
		eqn := qn + "." + el.Name
		c.emit(KindEnumElement, el, depth+1, eqn)
	}
}

func (c *collector) walkType(t *ast.Type, depth int, parentQN string) {
	if t == nil {
		return
	}
	c.emit(KindType, t, depth, t.Name)
	for _, g := range t.GenericTypes {
		c.walkType(g, depth+1, parentQN)
	}
}

// WalkSymbols visits every symbol matching filter, depth-first with
// parents before children, in deterministic source order.
func WalkSymbols(a *ast.Aidl, filter Filter, visit func(Symbol)) {
	for _, r := range collect(a) {
		if matchesFilter(r.sym.Kind, filter) {
			visit(r.sym)
		}
	}
}

// FilterSymbols collects, in walk order, every symbol matching filter for
// which predicate returns true.
func FilterSymbols(a *ast.Aidl, filter Filter, predicate func(Symbol) bool) []Symbol {
	var out []Symbol
	for _, r := range collect(a) {
		if matchesFilter(r.sym.Kind, filter) && predicate(r.sym) {
			out = append(out, r.sym)
		}
	}
	return out
}

// FindSymbol returns the first symbol matching filter and predicate in
// walk order.
func FindSymbol(a *ast.Aidl, filter Filter, predicate func(Symbol) bool) (Symbol, bool) {
	for _, r := range collect(a) {
		if matchesFilter(r.sym.Kind, filter) && predicate(r.sym) {
			return r.sym, true
		}
	}
	return Symbol{}, false
}

// FindSymbolAtLineCol returns the innermost symbol matching filter whose
// full range contains pos. Ties (equal range size) are broken by
// preferring the deepest symbol, then the one encountered latest in walk
// order.
func FindSymbolAtLineCol(a *ast.Aidl, filter Filter, pos ast.Position) (Symbol, bool) {
	var best *record
	for _, r := range collect(a) {
		if !matchesFilter(r.sym.Kind, filter) {
			continue
		}
		if !r.sym.GetFullRange().Contains(pos) {
			continue
		}
		rec := r
		if best == nil || isInnermost(rec, *best) {
			best = &rec
		}
	}
	if best == nil {
		return Symbol{}, false
	}
	return best.sym, true
}

func isInnermost(a, b record) bool {
	sa, sb := a.sym.GetFullRange().Size(), b.sym.GetFullRange().Size()
	if sa != sb {
		return sa < sb
	}
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order > b.order
}
