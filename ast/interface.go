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

package ast

// DirectionKind is the explicit `in`/`out`/`inout` marker on a method
// argument, or Unspecified when omitted.
type DirectionKind int

const (
	DirectionUnspecified DirectionKind = iota
	DirectionIn
	DirectionOut
	DirectionInOut
)

func (d DirectionKind) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	case DirectionInOut:
		return "inout"
	default:
		return ""
	}
}

// Direction carries the direction keyword and, when one was written in
// source, its range. When Kind is Unspecified, Range is a zero-width range
// at the start of the argument's type.
type Direction struct {
	Kind  DirectionKind
	Range Range
}

// InterfaceElement is implemented by Method and Const, the two things an
// interface body may contain.
type InterfaceElement interface {
	Node
	interfaceElement()
}

// Interface is a top-level `interface I { ... }` declaration. Oneway at
// this level means every method is implicitly oneway regardless of the
// method's own flag; see Method.EffectiveOneway.
type Interface struct {
	Name        string
	Oneway      bool
	Elements    []InterfaceElement
	Annotations []*Annotation
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (i *Interface) GetSymbolRange() Range { return i.SymbolRange }
func (i *Interface) GetFullRange() Range   { return i.FullRange }
func (i *Interface) ItemName() string      { return i.Name }
func (i *Interface) ItemKind() ItemKind    { return ItemKindInterface }

// Methods returns the elements that are methods, in declaration order.
func (i *Interface) Methods() []*Method {
	var out []*Method
	for _, e := range i.Elements {
		if m, ok := e.(*Method); ok {
			out = append(out, m)
		}
	}
	return out
}

// Consts returns the elements that are consts, in declaration order.
func (i *Interface) Consts() []*Const {
	var out []*Const
	for _, e := range i.Elements {
		if c, ok := e.(*Const); ok {
			out = append(out, c)
		}
	}
	return out
}

// Arg is a single method parameter.
type Arg struct {
	Direction   Direction
	Name        *string
	ArgType     *Type
	Annotations []*Annotation
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (a *Arg) GetSymbolRange() Range { return a.SymbolRange }
func (a *Arg) GetFullRange() Range   { return a.FullRange }

// GetName returns the argument's name, or "" if it was omitted.
func (a *Arg) GetName() string {
	if a.Name == nil {
		return ""
	}
	return *a.Name
}

// Method is a single interface method declaration.
type Method struct {
	Name              string
	Oneway            bool
	ReturnType        *Type
	Args              []*Arg
	Annotations       []*Annotation
	Doc               string
	TransactCode      *int
	SymbolRange       Range
	FullRange         Range
	OnewayRange       Range
	TransactCodeRange Range
}

func (m *Method) GetSymbolRange() Range { return m.SymbolRange }
func (m *Method) GetFullRange() Range   { return m.FullRange }
func (*Method) interfaceElement()       {}

// EffectiveOneway reports whether m is oneway, taking into account that an
// enclosing Interface with Oneway=true makes every method oneway
// regardless of the method's own flag. This is never stored back onto the
// method node; callers that need it pass the owning Interface.
func (m *Method) EffectiveOneway(owner *Interface) bool {
	return m.Oneway || (owner != nil && owner.Oneway)
}

// Const is a `const <type> NAME = value;` declaration. It appears both as
// an InterfaceElement and as a ParcelableElement.
type Const struct {
	Name        string
	ConstType   *Type
	Value       string
	Annotations []*Annotation
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (c *Const) GetSymbolRange() Range { return c.SymbolRange }
func (c *Const) GetFullRange() Range   { return c.FullRange }
func (*Const) interfaceElement()       {}
func (*Const) parcelableElement()      {}
