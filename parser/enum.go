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

func (p *parser) parseEnum(anns []*ast.Annotation) *ast.Enum {
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	doc, _ := p.lex.DocBefore(start)

	p.advance() // 'enum'
	nameTok, _ := p.expect(lexer.Ident, "identifier")

	e := &ast.Enum{
		Name:        nameTok.Lexeme,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
	}

	p.expectPunct("{")
	for !p.atPunct("}") && !p.at(lexer.EOF) {
		el := p.parseEnumElement()
		if el != nil {
			e.Elements = append(e.Elements, el)
		}
		if _, ok := p.acceptPunct(","); !ok {
			break
		}
	}
	p.expectPunct("}")
	e.FullRange = p.rangeFrom(start)
	return e
}

func (p *parser) parseEnumElement() *ast.EnumElement {
	anns := p.parseAnnotations()
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	if !p.at(lexer.Ident) {
		if p.atPunct("}") {
			return nil
		}
		r := p.synchronizeTo(map[lexer.Kind]bool{}, map[string]bool{",": true, "}": true})
		p.errAt(r, "Invalid enum element")
		return nil
	}
	doc, _ := p.lex.DocBefore(start)
	nameTok := p.advance()
	el := &ast.EnumElement{
		Name:        nameTok.Lexeme,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
	}
	if _, ok := p.acceptPunct("="); ok {
		val, _ := p.parseValue()
		el.Value = &val
	}
	el.FullRange = p.rangeFrom(start)
	_ = anns // enum elements' annotations are parsed but not modeled per spec.md §3 (EnumElement has no Annotations field)
	return el
}
