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

// Annotation represents an `@Name` or `@Name(k=v, ...)` decoration on a
// declaration, argument, field, or enum element. Values are kept as their
// literal source rendering; this library never evaluates constant
// expressions.
type Annotation struct {
	// Name includes the leading '@'.
	Name string
	// KeyValues is a map, so declaration order is not preserved; a nil
	// value means the key was given without '=value'.
	KeyValues map[string]*string
	Range     Range
}

func (a *Annotation) GetSymbolRange() Range { return a.Range }
func (a *Annotation) GetFullRange() Range   { return a.Range }
