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

// Package lexer tokenizes AIDL source and exposes a byte-offset to
// line/column lookup used to build every Range in the parsed AST.
package lexer

import "github.com/aidl-tools/aidl/ast"

// Kind classifies a lexed Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	IntLit
	FloatLit
	StringLit
	BoolLit
	Annotation
	Reserved
	Punct

	// Keywords. Lexeme always equals the keyword text.
	KeywordPackage
	KeywordImport
	KeywordInterface
	KeywordParcelable
	KeywordEnum
	KeywordOneway
	KeywordConst
	KeywordIn
	KeywordOut
	KeywordInout
	KeywordVoid
	KeywordString
	KeywordCharSequence
	KeywordList
	KeywordMap
	Primitive // byte short int long float double boolean char; Lexeme names it
)

var keywords = map[string]Kind{
	"package":      KeywordPackage,
	"import":       KeywordImport,
	"interface":    KeywordInterface,
	"parcelable":   KeywordParcelable,
	"enum":         KeywordEnum,
	"oneway":       KeywordOneway,
	"const":        KeywordConst,
	"in":           KeywordIn,
	"out":          KeywordOut,
	"inout":        KeywordInout,
	"void":         KeywordVoid,
	"String":       KeywordString,
	"CharSequence": KeywordCharSequence,
	"List":         KeywordList,
	"Map":          KeywordMap,
	"true":         BoolLit,
	"false":        BoolLit,
	"byte":         Primitive,
	"short":        Primitive,
	"int":          Primitive,
	"long":         Primitive,
	"float":        Primitive,
	"double":       Primitive,
	"boolean":      Primitive,
	"char":         Primitive,
}

// reservedWords mirrors the Java/C++ reserved-word class: accepted as a
// distinct token class so that using one as an identifier is a syntax
// error rather than silently shadowing a keyword of the host languages
// AIDL code gets generated into.
var reservedWords = map[string]bool{
	"class": true, "public": true, "private": true, "protected": true,
	"static": true, "final": true, "abstract": true, "this": true,
	"super": true, "new": true, "return": true, "if": true, "else": true,
	"for": true, "while": true, "do": true, "switch": true, "case": true,
	"default": true, "break": true, "continue": true, "try": true,
	"catch": true, "finally": true, "throw": true, "throws": true,
	"synchronized": true, "volatile": true, "transient": true,
	"native": true, "strictfp": true, "instanceof": true, "extends": true,
	"implements": true, "null": true, "namespace": true, "union": true,
	"template": true, "typename": true, "virtual": true, "delete": true,
	"friend": true, "operator": true, "typedef": true, "struct": true,
	"goto": true, "sizeof": true, "register": true, "auto": true,
	"signed": true, "unsigned": true, "const_cast": true, "export": true,
}

// Token is a single lexed unit: its classification, literal text, and byte
// span in the source.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
	Length int
}

// Range turns a token's byte span into a full ast.Range using fi.
func (t Token) Range(fi *FileInfo) ast.Range {
	return fi.RangeAt(t.Offset, t.Offset+t.Length)
}

// End returns the byte offset one past the last byte of the token.
func (t Token) End() int { return t.Offset + t.Length }
