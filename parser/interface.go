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
	"strconv"

	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/lexer"
)

var ifaceElementStart = map[lexer.Kind]bool{
	lexer.KeywordOneway: true,
	lexer.KeywordConst:  true,
	lexer.Annotation:    true,
}

func (p *parser) parseInterface(anns []*ast.Annotation) *ast.Interface {
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	doc, _ := p.lex.DocBefore(start)

	oneway := false
	if _, ok := p.accept(lexer.KeywordOneway); ok {
		oneway = true
	}
	p.expect(lexer.KeywordInterface, `"interface"`)
	nameTok, _ := p.expect(lexer.Ident, "identifier")

	iface := &ast.Interface{
		Name:        nameTok.Lexeme,
		Oneway:      oneway,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
	}

	p.expectPunct("{")
	for !p.atPunct("}") && !p.at(lexer.EOF) {
		if el := p.parseInterfaceElement(); el != nil {
			iface.Elements = append(iface.Elements, el)
		}
	}
	p.expectPunct("}")
	iface.FullRange = p.rangeFrom(start)
	return iface
}

// parseInterfaceElement parses one Method or Const, recovering with an
// "Invalid interface element" diagnostic on failure.
func (p *parser) parseInterfaceElement() ast.InterfaceElement {
	anns := p.parseAnnotations()
	switch {
	case p.at(lexer.KeywordConst):
		return p.parseConst(anns)
	case isMethodStart(p):
		return p.parseMethod(anns)
	default:
		r := p.synchronizeTo(map[lexer.Kind]bool{}, map[string]bool{";": true, "}": true})
		p.errAt(r, "Invalid interface element")
		return nil
	}
}

// isMethodStart reports whether the cursor looks like the beginning of a
// method declaration: optional 'oneway', then a type.
func isMethodStart(p *parser) bool {
	switch p.cur().Kind {
	case lexer.KeywordOneway, lexer.KeywordVoid, lexer.Primitive, lexer.KeywordString,
		lexer.KeywordCharSequence, lexer.KeywordList, lexer.KeywordMap, lexer.Ident:
		return true
	default:
		return false
	}
}

func (p *parser) parseMethod(anns []*ast.Annotation) *ast.Method {
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	doc, _ := p.lex.DocBefore(start)

	onewayRange := p.lex.File.ZeroWidthRangeAt(p.cur().Offset)
	oneway := false
	if t, ok := p.accept(lexer.KeywordOneway); ok {
		oneway = true
		onewayRange = t.Range(p.lex.File)
	}

	returnType := p.parseType()
	nameTok, _ := p.expect(lexer.Ident, "identifier")

	m := &ast.Method{
		Name:        nameTok.Lexeme,
		Oneway:      oneway,
		ReturnType:  returnType,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
		OnewayRange: onewayRange,
	}

	p.expectPunct("(")
	if !p.atPunct(")") {
		for {
			m.Args = append(m.Args, p.parseArg())
			if _, ok := p.acceptPunct(","); !ok {
				break
			}
		}
	}
	p.expectPunct(")")

	if _, ok := p.acceptPunct("="); ok {
		codeTok := p.cur()
		if codeTok.Kind == lexer.IntLit {
			p.advance()
			if v, err := strconv.Atoi(codeTok.Lexeme); err == nil {
				m.TransactCode = &v
			} else {
				p.errAt(codeTok.Range(p.lex.File), "Invalid method transact code: %s", codeTok.Lexeme)
			}
			m.TransactCodeRange = codeTok.Range(p.lex.File)
		} else {
			p.errAt(codeTok.Range(p.lex.File), "Invalid method transact code: %s", codeTok.Lexeme)
			m.TransactCodeRange = codeTok.Range(p.lex.File)
		}
	}
	p.expectPunct(";")
	m.FullRange = p.rangeFrom(start)
	return m
}

func (p *parser) parseArg() *ast.Arg {
	start := p.cur().Offset
	anns := p.parseAnnotations()
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}

	var dir ast.Direction
	switch p.cur().Kind {
	case lexer.KeywordIn:
		t := p.advance()
		dir = ast.Direction{Kind: ast.DirectionIn, Range: t.Range(p.lex.File)}
	case lexer.KeywordOut:
		t := p.advance()
		dir = ast.Direction{Kind: ast.DirectionOut, Range: t.Range(p.lex.File)}
	case lexer.KeywordInout:
		t := p.advance()
		dir = ast.Direction{Kind: ast.DirectionInOut, Range: t.Range(p.lex.File)}
	default:
		dir = ast.Direction{Kind: ast.DirectionUnspecified, Range: p.lex.File.ZeroWidthRangeAt(p.cur().Offset)}
	}

	argType := p.parseType()
	var name *string
	symRange := argType.SymbolRange
	if t, ok := p.accept(lexer.Ident); ok {
		n := t.Lexeme
		name = &n
		symRange = t.Range(p.lex.File)
	}

	return &ast.Arg{
		Direction:   dir,
		Name:        name,
		ArgType:     argType,
		Annotations: anns,
		SymbolRange: symRange,
		FullRange:   p.rangeFrom(start),
	}
}

func (p *parser) parseConst(anns []*ast.Annotation) *ast.Const {
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	doc, _ := p.lex.DocBefore(start)
	p.advance() // 'const'
	constType := p.parseType()
	nameTok, _ := p.expect(lexer.Ident, "identifier")
	c := &ast.Const{
		Name:        nameTok.Lexeme,
		ConstType:   constType,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameTok.Range(p.lex.File),
	}
	p.expectPunct("=")
	val, _ := p.parseValue()
	c.Value = val
	p.expectPunct(";")
	c.FullRange = p.rangeFrom(start)
	return c
}
