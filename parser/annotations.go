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

package parser

import (
	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/lexer"
)

// parseAnnotations consumes zero or more `@Name` or `@Name(k=v, ...)`
// annotations preceding a declaration.
func (p *parser) parseAnnotations() []*ast.Annotation {
	var out []*ast.Annotation
	for p.at(lexer.Annotation) {
		out = append(out, p.parseAnnotation())
	}
	return out
}

func (p *parser) parseAnnotation() *ast.Annotation {
	tok := p.advance() // '@Name'
	ann := &ast.Annotation{Name: tok.Lexeme, KeyValues: map[string]*string{}}
	endOffset := tok.End()
	if p.atPunct("(") {
		p.advance()
		if !p.atPunct(")") {
			for {
				key, ok := p.expect(lexer.Ident, "identifier")
				if !ok {
					break
				}
				var val *string
				if p.atPunct("=") {
					p.advance()
					v, _ := p.parseValue()
					val = &v
				}
				ann.KeyValues[key.Lexeme] = val
				if _, ok := p.acceptPunct(","); !ok {
					break
				}
			}
		}
		if t, ok := p.expectPunct(")"); ok {
			endOffset = t.End()
		} else {
			endOffset = p.cur().Offset
		}
	}
	ann.Range = p.lex.File.RangeAt(tok.Offset, endOffset)
	return ann
}
