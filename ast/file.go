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

// Package is the `package a.b.c;` declaration at the top of a file.
type Package struct {
	Name        string
	SymbolRange Range
	FullRange   Range
}

func (p *Package) GetSymbolRange() Range { return p.SymbolRange }
func (p *Package) GetFullRange() Range   { return p.FullRange }

// Import is an `import a.b.C;` declaration. Path is the dotted prefix
// ("a.b"); Name is the simple trailing identifier ("C").
type Import struct {
	Path        string
	Name        string
	SymbolRange Range
	FullRange   Range
}

func (i *Import) GetSymbolRange() Range { return i.SymbolRange }
func (i *Import) GetFullRange() Range   { return i.FullRange }

// QualifiedName returns Path + "." + Name, or just Name if Path is empty.
func (i *Import) QualifiedName() string {
	if i.Path == "" {
		return i.Name
	}
	return i.Path + "." + i.Name
}

// DeclaredParcelable is a forward declaration (`parcelable X;`) that
// provides a referenceable type without a corresponding file. It has the
// same shape as Import and resolves to itself as an opaque parcelable.
type DeclaredParcelable struct {
	Path        string
	Name        string
	SymbolRange Range
	FullRange   Range
}

func (d *DeclaredParcelable) GetSymbolRange() Range { return d.SymbolRange }
func (d *DeclaredParcelable) GetFullRange() Range   { return d.FullRange }

// QualifiedName returns Path + "." + Name, or just Name if Path is empty.
func (d *DeclaredParcelable) QualifiedName() string {
	if d.Path == "" {
		return d.Name
	}
	return d.Path + "." + d.Name
}

// Aidl is the root of a single parsed file: its package, imports, forward
// parcelable declarations, and exactly one top-level Item.
type Aidl struct {
	Package             *Package
	Imports             []*Import
	DeclaredParcelables []*DeclaredParcelable
	Item                Item
}

// QualifiedItemName returns Package.Name + "." + Item.ItemName(), or just
// the item name if there is no package.
func (a *Aidl) QualifiedItemName() string {
	if a.Item == nil {
		return ""
	}
	if a.Package == nil || a.Package.Name == "" {
		return a.Item.ItemName()
	}
	return a.Package.Name + "." + a.Item.ItemName()
}
