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

func (p *parser) parseParcelable(anns []*ast.Annotation) *ast.Parcelable {
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	doc, _ := p.lex.DocBefore(start)

	p.advance() // 'parcelable'
	nameTok, _ := p.expect(lexer.Ident, "identifier")

	par := &ast.Parcelable{
		Name:        nameTok.Lexeme,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
	}

	p.expectPunct("{")
	for !p.atPunct("}") && !p.at(lexer.EOF) {
		if el := p.parseParcelableElement(); el != nil {
			par.Elements = append(par.Elements, el)
		}
	}
	p.expectPunct("}")
	par.FullRange = p.rangeFrom(start)
	return par
}

func (p *parser) parseParcelableElement() ast.ParcelableElement {
	anns := p.parseAnnotations()
	switch {
	case p.at(lexer.KeywordConst):
		return p.parseConst(anns)
	case isTypeStart(p):
		return p.parseField(anns)
	default:
		r := p.synchronizeTo(map[lexer.Kind]bool{}, map[string]bool{";": true, "}": true})
		p.errAt(r, "Invalid parcelable element")
		return nil
	}
}

func isTypeStart(p *parser) bool {
	switch p.cur().Kind {
	case lexer.KeywordVoid, lexer.Primitive, lexer.KeywordString,
		lexer.KeywordCharSequence, lexer.KeywordList, lexer.KeywordMap, lexer.Ident:
		return true
	default:
		return false
	}
}

func (p *parser) parseField(anns []*ast.Annotation) *ast.Field {
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	doc, _ := p.lex.DocBefore(start)
	fieldType := p.parseType()
	nameTok, _ := p.expect(lexer.Ident, "identifier")

	f := &ast.Field{
		Name:        nameTok.Lexeme,
		FieldType:   fieldType,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
	}
	if _, ok := p.acceptPunct("="); ok {
		val, _ := p.parseValue()
		f.Value = &val
	}
	p.expectPunct(";")
	f.FullRange = p.rangeFrom(start)
	return f
}
