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
	"github.com/aidl-tools/aidl/reporter"
)

// itemStartKinds is the token set used by the package, import and
// declared-parcelable recovery points to decide where a broken top-level
// construct ends.
var itemStartKinds = map[lexer.Kind]bool{
	lexer.KeywordImport:     true,
	lexer.KeywordParcelable: true,
	lexer.KeywordInterface:  true,
	lexer.KeywordEnum:       true,
	lexer.Annotation:        true,
}

// Parse lexes and parses one file's content, reporting diagnostics into
// handler under fileKey. It returns nil only when no package declaration
// or top-level item could be recovered at all.
func Parse(fileKey string, content []byte, handler *reporter.Handler) *ast.Aidl {
	lx := lexer.New(fileKey, content, handler)
	tokens := lx.Tokenize()
	p := &parser{fileKey: fileKey, lex: lx, tokens: tokens, handler: handler}
	return p.parseFile()
}

func (p *parser) parseFile() *ast.Aidl {
	pkg, ok := p.parsePackage()
	if !ok {
		return nil
	}

	var imports []*ast.Import
	for p.at(lexer.KeywordImport) {
		imports = append(imports, p.parseImport())
	}

	var declared []*ast.DeclaredParcelable
	for p.atDeclaredParcelable() {
		declared = append(declared, p.parseDeclaredParcelable())
	}

	item := p.parseItem()
	if item == nil {
		return nil
	}

	return &ast.Aidl{
		Package:             pkg,
		Imports:             imports,
		DeclaredParcelables: declared,
		Item:                item,
	}
}

func (p *parser) parsePackage() (*ast.Package, bool) {
	start := p.cur().Offset
	if _, ok := p.expect(lexer.KeywordPackage, `"package"`); !ok {
		p.synchronizeTo(itemStartKinds, map[string]bool{";": true})
		return nil, false
	}
	q, ok := p.parseQName()
	if !ok {
		p.synchronizeTo(itemStartKinds, map[string]bool{";": true})
		return nil, false
	}
	p.expectPunct(";")
	return &ast.Package{
		Name:        q.Text,
		SymbolRange: q.FullRange,
		FullRange:   p.rangeFrom(start),
	}, true
}

func (p *parser) parseImport() *ast.Import {
	start := p.advance().Offset // 'import'
	q, ok := p.parseQName()
	if !ok {
		p.synchronizeTo(itemStartKinds, map[string]bool{";": true})
		return &ast.Import{FullRange: p.rangeFrom(start)}
	}
	p.expectPunct(";")
	path, name := splitQName(q.Text)
	return &ast.Import{
		Path:        path,
		Name:        name,
		SymbolRange: q.SimpleRange,
		FullRange:   p.rangeFrom(start),
	}
}

// atDeclaredParcelable reports whether the cursor is at a forward
// parcelable declaration: optional annotations, then 'parcelable' qname
// ';' (as opposed to the body-bearing 'parcelable' IDENT '{'). Lookahead
// past any leading annotations is required since both forms start the
// same way.
func (p *parser) atDeclaredParcelable() bool {
	save := p.pos
	defer func() { p.pos = save }()
	for p.at(lexer.Annotation) {
		p.skipAnnotationLookahead()
	}
	if !p.at(lexer.KeywordParcelable) {
		return false
	}
	p.advance()
	if !p.at(lexer.Ident) {
		return false
	}
	p.advance()
	for p.atPunct(".") {
		p.advance()
		if !p.at(lexer.Ident) {
			return false
		}
		p.advance()
	}
	return p.atPunct(";")
}

func (p *parser) skipAnnotationLookahead() {
	p.advance()
	if p.atPunct("(") {
		depth := 0
		for !p.at(lexer.EOF) {
			if p.atPunct("(") {
				depth++
			} else if p.atPunct(")") {
				depth--
				p.advance()
				if depth == 0 {
					return
				}
				continue
			}
			p.advance()
		}
	}
}

func (p *parser) parseDeclaredParcelable() *ast.DeclaredParcelable {
	anns := p.parseAnnotations()
	start := p.cur().Offset
	if len(anns) > 0 {
		start = anns[0].Range.OffsetStart
	}
	p.advance() // 'parcelable'
	q, ok := p.parseQName()
	if !ok {
		p.synchronizeTo(itemStartKinds, map[string]bool{";": true})
		return &ast.DeclaredParcelable{FullRange: p.rangeFrom(start)}
	}
	p.expectPunct(";")
	path, name := splitQName(q.Text)
	return &ast.DeclaredParcelable{
		Path:        path,
		Name:        name,
		SymbolRange: q.SimpleRange,
		FullRange:   p.rangeFrom(start),
	}
}

func splitQName(full string) (path, name string) {
	idx := -1
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == '.' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}

// parseItem parses the single top-level interface/parcelable/enum
// declaration. On failure it synchronizes past the broken construct,
// records "Invalid item", and returns nil: per the grammar, a failed item
// means the whole Aidl is not built.
func (p *parser) parseItem() ast.Item {
	anns := p.parseAnnotations()
	switch {
	case p.at(lexer.KeywordOneway), p.at(lexer.KeywordInterface):
		return p.parseInterface(anns)
	case p.at(lexer.KeywordParcelable):
		return p.parseParcelable(anns)
	case p.at(lexer.KeywordEnum):
		return p.parseEnum(anns)
	default:
		r := p.synchronizeTo(map[lexer.Kind]bool{lexer.EOF: true}, map[string]bool{})
		p.errAt(r, "Invalid item")
		return nil
	}
}
