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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidl-tools/aidl/reporter"
)

func tokenize(t *testing.T, src string) ([]Token, *Lexer) {
	t.Helper()
	h := reporter.NewHandler()
	lx := New("t.aidl", []byte(src), h)
	toks := lx.Tokenize()
	return toks, lx
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize_KeywordsAndIdents(t *testing.T) {
	toks, _ := tokenize(t, "package a.b.c; interface Foo { void bar(); }")
	got := kinds(toks)
	require.NotEmpty(t, got)
	assert.Equal(t, EOF, got[len(got)-1])
	assert.Equal(t, KeywordPackage, got[0])
	assert.Contains(t, got, KeywordInterface)
	assert.Contains(t, got, KeywordVoid)
}

func TestTokenize_Annotation(t *testing.T) {
	toks, _ := tokenize(t, "@Hide interface Foo {}")
	require.NotEmpty(t, toks)
	assert.Equal(t, Annotation, toks[0].Kind)
	assert.Equal(t, "@Hide", toks[0].Lexeme)
}

func TestTokenize_NumberLiterals(t *testing.T) {
	toks, _ := tokenize(t, "1 2.5 3f")
	require.Len(t, toks, 4) // 3 numbers + EOF
	assert.Equal(t, IntLit, toks[0].Kind)
	assert.Equal(t, FloatLit, toks[1].Kind)
	assert.Equal(t, FloatLit, toks[2].Kind)
}

func TestTokenize_LineAndBlockComments(t *testing.T) {
	toks, _ := tokenize(t, "// comment\npackage p;\n/* block */ interface I {}")
	got := kinds(toks)
	assert.Equal(t, KeywordPackage, got[0])
}

func TestTokenize_UnknownCharacterReportsError(t *testing.T) {
	h := reporter.NewHandler()
	lx := New("t.aidl", []byte("package p; interface I { void f(); } #"), h)
	lx.Tokenize()
	assert.Greater(t, h.ErrorCount(), 0)
}

func TestDocBefore_AttachesImmediatelyPrecedingDoc(t *testing.T) {
	src := "/**\n * Does a thing.\n */\ninterface Foo {}"
	_, lx := tokenize(t, src)
	ifaceOffset := len("/**\n * Does a thing.\n */\n")
	doc, ok := lx.DocBefore(ifaceOffset)
	require.True(t, ok)
	assert.Contains(t, doc, "Does a thing.")
}

func TestDocBefore_TooManyBlankLinesIsNotAttached(t *testing.T) {
	src := "/** doc */\n\n\ninterface Foo {}"
	_, lx := tokenize(t, src)
	ifaceOffset := len("/** doc */\n\n\n")
	_, ok := lx.DocBefore(ifaceOffset)
	assert.False(t, ok)
}

func TestDocBefore_OneBlankLineIsTolerated(t *testing.T) {
	src := "/** doc */\n\ninterface Foo {}"
	_, lx := tokenize(t, src)
	ifaceOffset := len("/** doc */\n\n")
	_, ok := lx.DocBefore(ifaceOffset)
	assert.True(t, ok)
}

func TestFileInfo_PositionRoundTrip(t *testing.T) {
	fi := NewFileInfo("t.aidl", []byte("abc\ndef\nghi"))
	pos := fi.Position(5) // 'e' on line 2
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 2, pos.Column)
}
