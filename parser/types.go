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

// parseType parses a type reference, including arbitrarily nested List/Map
// generics and trailing array brackets.
func (p *parser) parseType() *ast.Type {
	t := p.parsePrimaryType()
	for p.atPunct("[") {
		open := p.cur()
		p.advance()
		closeTok, ok := p.expectPunct("]")
		end := closeTok.End()
		if !ok {
			end = open.End()
		}
		t = &ast.Type{
			Name:         t.Name + "[]",
			Kind:         ast.KindArray,
			GenericTypes: []*ast.Type{t},
			SymbolRange:  t.SymbolRange,
			FullRange:    p.lex.File.RangeAt(t.FullRange.OffsetStart, end),
		}
	}
	return t
}

func (p *parser) parsePrimaryType() *ast.Type {
	t := p.cur()
	switch t.Kind {
	case lexer.KeywordVoid:
		p.advance()
		return p.simpleType(t, ast.KindVoid)
	case lexer.Primitive:
		p.advance()
		return p.simpleType(t, ast.KindPrimitive)
	case lexer.KeywordString:
		p.advance()
		return p.simpleType(t, ast.KindString)
	case lexer.KeywordCharSequence:
		p.advance()
		return p.simpleType(t, ast.KindCharSequence)
	case lexer.KeywordList:
		p.advance()
		return p.parseGenericType(t, "List", ast.KindList, 1)
	case lexer.KeywordMap:
		p.advance()
		return p.parseGenericType(t, "Map", ast.KindMap, 2)
	case lexer.Ident:
		q, _ := p.parseQName()
		return &ast.Type{
			Name:        q.Text,
			Kind:        ast.KindCustom,
			SymbolRange: q.SimpleRange,
			FullRange:   q.FullRange,
		}
	default:
		p.errAt(t.Range(p.lex.File), "Expected a type")
		return &ast.Type{Name: "", Kind: ast.KindInvalid, SymbolRange: t.Range(p.lex.File), FullRange: t.Range(p.lex.File)}
	}
}

func (p *parser) simpleType(tok lexer.Token, kind ast.TypeKind) *ast.Type {
	r := tok.Range(p.lex.File)
	return &ast.Type{Name: tok.Lexeme, Kind: kind, SymbolRange: r, FullRange: r}
}

// parseGenericType handles List and Map, which may appear with or without
// their generic arguments. arity is 1 for List, 2 for Map.
func (p *parser) parseGenericType(keyword lexer.Token, name string, kind ast.TypeKind, arity int) *ast.Type {
	symRange := keyword.Range(p.lex.File)
	endOffset := keyword.End()
	var generics []*ast.Type
	if p.atPunct("<") {
		p.advance()
		for i := 0; i < arity; i++ {
			generics = append(generics, p.parseType())
			if i < arity-1 {
				p.expectPunct(",")
			}
		}
		if t, ok := p.expectPunct(">"); ok {
			endOffset = t.End()
		} else {
			endOffset = p.cur().Offset
		}
	} else {
		p.warnAt(symRange, "%s used without a type parameter", name)
	}
	return &ast.Type{
		Name:         name,
		Kind:         kind,
		GenericTypes: generics,
		SymbolRange:  symRange,
		FullRange:    p.lex.File.RangeAt(keyword.Offset, endOffset),
	}
}
