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
	"strings"

	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/lexer"
)

// qname is a dotted qualified name with the range of the whole thing and
// the range of its last (simple-name) segment.
type qname struct {
	Text        string
	FullRange   ast.Range
	SimpleRange ast.Range
}

// parseQName parses IDENT ('.' IDENT)*.
func (p *parser) parseQName() (qname, bool) {
	first, ok := p.accept(lexer.Ident)
	if !ok {
		return qname{}, false
	}
	var parts []string
	parts = append(parts, first.Lexeme)
	lastTok := first
	for p.atPunct(".") {
		p.advance()
		id, ok := p.expect(lexer.Ident, "identifier")
		if !ok {
			break
		}
		parts = append(parts, id.Lexeme)
		lastTok = id
	}
	return qname{
		Text:        strings.Join(parts, "."),
		FullRange:   p.lex.File.RangeAt(first.Offset, lastTok.End()),
		SimpleRange: lastTok.Range(p.lex.File),
	}, true
}

// parseValue parses a literal rendering used for const values, field
// defaults, and annotation arguments: numeric/string/boolean literals, a
// dotted identifier (for enum value references), empty braces, or a
// brace-enclosed list (rendered as the "{...}" marker).
func (p *parser) parseValue() (string, ast.Range) {
	t := p.cur()
	switch t.Kind {
	case lexer.IntLit, lexer.FloatLit, lexer.StringLit, lexer.BoolLit:
		p.advance()
		return t.Lexeme, t.Range(p.lex.File)
	case lexer.Ident:
		q, _ := p.parseQName()
		return q.Text, q.FullRange
	default:
		if p.atPunct("{") {
			return p.parseBraceValue()
		}
		p.errAt(t.Range(p.lex.File), "Expected a value")
		return "", t.Range(p.lex.File)
	}
}

func (p *parser) parseBraceValue() (string, ast.Range) {
	open := p.cur()
	p.advance() // '{'
	if t, ok := p.acceptPunct("}"); ok {
		return "{}", p.lex.File.RangeAt(open.Offset, t.End())
	}
	depth := 1
	for !p.at(lexer.EOF) && depth > 0 {
		if p.atPunct("{") {
			depth++
		} else if p.atPunct("}") {
			depth--
			if depth == 0 {
				end := p.cur().End()
				p.advance()
				return "{...}", p.lex.File.RangeAt(open.Offset, end)
			}
		}
		p.advance()
	}
	return "{...}", p.rangeFrom(open.Offset)
}
