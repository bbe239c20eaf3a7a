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

// Package parser turns a token stream from package lexer into an AIDL AST,
// recovering from local syntax errors at four synchronization points
// (item, interface element, parcelable element, enum element) instead of
// aborting the whole parse.
package parser

import (
	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/lexer"
	"github.com/aidl-tools/aidl/reporter"
)

// parser holds cursor state over one file's token stream.
type parser struct {
	fileKey string
	lex     *lexer.Lexer
	tokens  []lexer.Token
	pos     int
	handler *reporter.Handler
}

func (p *parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) at(kind lexer.Kind) bool {
	return p.cur().Kind == kind
}

func (p *parser) atPunct(lexeme string) bool {
	t := p.cur()
	return t.Kind == lexer.Punct && t.Lexeme == lexeme
}

func (p *parser) advance() lexer.Token {
	t := p.cur()
	if t.Kind != lexer.EOF {
		p.pos++
	}
	return t
}

// accept consumes the current token if it matches kind, reporting whether
// it did.
func (p *parser) accept(kind lexer.Kind) (lexer.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

func (p *parser) acceptPunct(lexeme string) (lexer.Token, bool) {
	if p.atPunct(lexeme) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// expect consumes the current token if it matches kind, otherwise records
// an error diagnostic and returns the current (unconsumed) token so
// callers can still inspect its position.
func (p *parser) expect(kind lexer.Kind, what string) (lexer.Token, bool) {
	if t, ok := p.accept(kind); ok {
		return t, true
	}
	p.errAt(p.cur().Range(p.lex.File), "Expected %s", what)
	return p.cur(), false
}

func (p *parser) expectPunct(lexeme string) (lexer.Token, bool) {
	if t, ok := p.acceptPunct(lexeme); ok {
		return t, true
	}
	p.errAt(p.cur().Range(p.lex.File), "Expected '%s'", lexeme)
	return p.cur(), false
}

func (p *parser) errAt(r ast.Range, format string, args ...any) {
	p.handler.Errorf(p.fileKey, r, format, args...)
}

func (p *parser) warnAt(r ast.Range, format string, args ...any) {
	p.handler.Warnf(p.fileKey, r, format, args...)
}

// rangeFrom builds a full range spanning from startOffset to the end of
// the most recently consumed token (p.pos-1), falling back to the current
// token's start when nothing has been consumed.
func (p *parser) rangeFrom(startOffset int) ast.Range {
	endOffset := startOffset
	if p.pos > 0 {
		last := p.tokens[p.pos-1]
		endOffset = last.End()
	}
	if endOffset < startOffset {
		endOffset = startOffset
	}
	return p.lex.File.RangeAt(startOffset, endOffset)
}

// synchronizeTo skips tokens until the current one matches one of stop, or
// EOF is reached, returning the range of the skipped span. It does not
// consume the stop token itself, except ';' which is consumed since it is
// always the natural end of the broken construct.
func (p *parser) synchronizeTo(stop map[lexer.Kind]bool, stopPunct map[string]bool) ast.Range {
	start := p.cur().Offset
	for !p.at(lexer.EOF) {
		t := p.cur()
		if stop[t.Kind] {
			break
		}
		if t.Kind == lexer.Punct && stopPunct[t.Lexeme] {
			if t.Lexeme == ";" {
				p.advance()
			}
			break
		}
		p.advance()
	}
	end := start
	if p.pos > 0 {
		end = p.tokens[p.pos-1].End()
	}
	if end < start {
		end = start
	}
	return p.lex.File.RangeAt(start, end)
}
