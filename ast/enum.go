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

// Enum is a top-level `enum E { ... }` declaration.
type Enum struct {
	Name        string
	Elements    []*EnumElement
	Annotations []*Annotation
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (e *Enum) GetSymbolRange() Range { return e.SymbolRange }
func (e *Enum) GetFullRange() Range   { return e.FullRange }
func (e *Enum) ItemName() string      { return e.Name }
func (e *Enum) ItemKind() ItemKind    { return ItemKindEnum }

// EnumElement is a single `NAME = literal` or bare `NAME` enumerator.
type EnumElement struct {
	Name        string
	Value       *string
	Doc         string
	SymbolRange Range
	FullRange   Range
}

func (e *EnumElement) GetSymbolRange() Range { return e.SymbolRange }
func (e *EnumElement) GetFullRange() Range   { return e.FullRange }
