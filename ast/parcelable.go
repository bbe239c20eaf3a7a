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

// ParcelableElement is implemented by Field and Const, the two things a
// parcelable body may contain.
type ParcelableElement interface {
	Node
	parcelableElement()
}

// Parcelable is a top-level `parcelable P { ... }` declaration with a body
// (as opposed to a forward declaration, which is DeclaredParcelable).
type Parcelable struct {
	Name        string
	Elements    []ParcelableElement
	Annotations []*Annotation
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (p *Parcelable) GetSymbolRange() Range { return p.SymbolRange }
func (p *Parcelable) GetFullRange() Range   { return p.FullRange }
func (p *Parcelable) ItemName() string      { return p.Name }
func (p *Parcelable) ItemKind() ItemKind    { return ItemKindParcelable }

// Fields returns the elements that are fields, in declaration order.
func (p *Parcelable) Fields() []*Field {
	var out []*Field
	for _, e := range p.Elements {
		if f, ok := e.(*Field); ok {
			out = append(out, f)
		}
	}
	return out
}

// Consts returns the elements that are consts, in declaration order.
func (p *Parcelable) Consts() []*Const {
	var out []*Const
	for _, e := range p.Elements {
		if c, ok := e.(*Const); ok {
			out = append(out, c)
		}
	}
	return out
}

// Field is a single parcelable field, with an optional default value
// rendered as source text.
type Field struct {
	Name        string
	FieldType   *Type
	Value       *string
	Annotations []*Annotation
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (f *Field) GetSymbolRange() Range { return f.SymbolRange }
func (f *Field) GetFullRange() Range   { return f.FullRange }
func (*Field) parcelableElement()      {}
