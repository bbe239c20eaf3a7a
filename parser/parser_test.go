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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/reporter"
)

func parse(t *testing.T, src string) (*ast.Aidl, *reporter.Handler) {
	t.Helper()
	h := reporter.NewHandler()
	a := Parse("t.aidl", []byte(src), h)
	return a, h
}

func TestParse_InterfaceWithMethodsAndConst(t *testing.T) {
	src := `package com.example;
interface IFoo {
    const int VERSION = 1;
    int doThing(in String name, out int[] results);
    oneway void notify(int code);
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.ErrorCount())
	assert.Equal(t, "com.example", a.Package.Name)

	iface, ok := a.Item.(*ast.Interface)
	require.True(t, ok)
	assert.Equal(t, "IFoo", iface.Name)

	methods := iface.Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, "doThing", methods[0].Name)
	require.Len(t, methods[0].Args, 2)
	assert.Equal(t, ast.DirectionIn, methods[0].Args[0].Direction.Kind)
	assert.Equal(t, ast.DirectionOut, methods[0].Args[1].Direction.Kind)
	assert.True(t, methods[0].Args[1].ArgType.IsArray())

	assert.True(t, methods[1].Oneway)
	assert.Equal(t, ast.KindVoid, methods[1].ReturnType.Kind)

	consts := iface.Consts()
	require.Len(t, consts, 1)
	assert.Equal(t, "VERSION", consts[0].Name)
	assert.Equal(t, "1", consts[0].Value)
}

func TestParse_ParcelableWithFieldsAndDefault(t *testing.T) {
	src := `package p;
parcelable Data {
    int id;
    String name = "unnamed";
}`
	a, _ := parse(t, src)
	require.NotNil(t, a)
	p, ok := a.Item.(*ast.Parcelable)
	require.True(t, ok)
	fields := p.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "id", fields[0].Name)
	require.NotNil(t, fields[1].Value)
	assert.Equal(t, `"unnamed"`, *fields[1].Value)
}

func TestParse_Enum(t *testing.T) {
	src := `package p;
enum Status {
    OK,
    FAILED = 2,
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.ErrorCount())
	e, ok := a.Item.(*ast.Enum)
	require.True(t, ok)
	require.Len(t, e.Elements, 2)
	assert.Equal(t, "OK", e.Elements[0].Name)
	assert.Nil(t, e.Elements[0].Value)
	require.NotNil(t, e.Elements[1].Value)
	assert.Equal(t, "2", *e.Elements[1].Value)
}

func TestParse_OnewayInterfaceAppliesToEveryMethod(t *testing.T) {
	src := `package p;
oneway interface IEvents {
    void onFoo();
}`
	a, _ := parse(t, src)
	require.NotNil(t, a)
	iface := a.Item.(*ast.Interface)
	assert.True(t, iface.Oneway)
	m := iface.Methods()[0]
	assert.False(t, m.Oneway)
	assert.True(t, m.EffectiveOneway(iface))
}

func TestParse_MethodTransactCode(t *testing.T) {
	src := `package p;
interface IFoo {
    void a() = 1;
    void b() = 2;
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.ErrorCount())
	methods := a.Item.(*ast.Interface).Methods()
	require.NotNil(t, methods[0].TransactCode)
	assert.Equal(t, 1, *methods[0].TransactCode)
	require.NotNil(t, methods[1].TransactCode)
	assert.Equal(t, 2, *methods[1].TransactCode)
}

func TestParse_DeclaredParcelableForwardDeclaration(t *testing.T) {
	src := `package p;
parcelable Opaque;
interface IFoo {
    void take(in Opaque o);
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.ErrorCount())
	require.Len(t, a.DeclaredParcelables, 1)
	assert.Equal(t, "Opaque", a.DeclaredParcelables[0].Name)
}

func TestParse_ListAndMapWithoutGenericsWarns(t *testing.T) {
	src := `package p;
interface IFoo {
    List getAll();
    Map getByKey();
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.ErrorCount())
	assert.Equal(t, 2, h.WarningCount())
}

func TestParse_InvalidTopLevelConstructSynchronizes(t *testing.T) {
	src := `package p;
???
`
	a, h := parse(t, src)
	assert.Nil(t, a)
	assert.Greater(t, h.ErrorCount(), 0)
	msgs := h.Diagnostics("t.aidl")
	found := false
	for _, d := range msgs {
		if d.Message == "Invalid item" {
			found = true
		}
	}
	assert.True(t, found)
}

func diagnosticMessages(h *reporter.Handler, fileKey string) []string {
	var out []string
	for _, d := range h.Diagnostics(fileKey) {
		out = append(out, d.Message)
	}
	return out
}

func TestParse_MalformedInterfaceElementRecovers(t *testing.T) {
	src := `package p;
interface IFoo {
    void a();
    42;
    void b();
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, []string{"Invalid interface element"}, diagnosticMessages(h, "t.aidl"))

	methods := a.Item.(*ast.Interface).Methods()
	require.Len(t, methods, 2)
	assert.Equal(t, "a", methods[0].Name)
	assert.Equal(t, "b", methods[1].Name)
}

func TestParse_MalformedParcelableElementRecovers(t *testing.T) {
	src := `package p;
parcelable Data {
    int a;
    42;
    int b;
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, []string{"Invalid parcelable element"}, diagnosticMessages(h, "t.aidl"))

	fields := a.Item.(*ast.Parcelable).Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, "b", fields[1].Name)
}

func TestParse_MalformedEnumElementRecovers(t *testing.T) {
	src := `package p;
enum Status {
    OK,
    42,
    FAILED
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, []string{"Invalid enum element"}, diagnosticMessages(h, "t.aidl"))

	e := a.Item.(*ast.Enum)
	require.Len(t, e.Elements, 2)
	assert.Equal(t, "OK", e.Elements[0].Name)
	assert.Equal(t, "FAILED", e.Elements[1].Name)
}

func TestParse_EmptyContentYieldsNoAstAndAnError(t *testing.T) {
	a, h := parse(t, "")
	assert.Nil(t, a)
	assert.Greater(t, h.ErrorCount(), 0)
}

func TestParse_CommentsOnlyContentYieldsNoAstAndAnError(t *testing.T) {
	src := `// just a comment
/* and a block comment */
`
	a, h := parse(t, src)
	assert.Nil(t, a)
	assert.Greater(t, h.ErrorCount(), 0)
}

func TestParse_PackageOnlyContentYieldsNoItemButNoPackageError(t *testing.T) {
	a, h := parse(t, "package p;")
	assert.Nil(t, a)
	assert.Equal(t, []string{"Invalid item"}, diagnosticMessages(h, "t.aidl"))
}

func TestParse_GenericListAndMap(t *testing.T) {
	src := `package p;
parcelable Data {
    List<String> names;
    Map<String, Data> byName;
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.WarningCount())
	assert.Equal(t, 0, h.ErrorCount())
	fields := a.Item.(*ast.Parcelable).Fields()
	assert.Equal(t, ast.KindList, fields[0].FieldType.Kind)
	require.Len(t, fields[0].FieldType.GenericTypes, 1)
	assert.Equal(t, ast.KindMap, fields[1].FieldType.Kind)
	require.Len(t, fields[1].FieldType.GenericTypes, 2)
}

func TestParse_MissingPackageReturnsNil(t *testing.T) {
	src := `interface IFoo { void a(); }`
	a, h := parse(t, src)
	assert.Nil(t, a)
	assert.Greater(t, h.ErrorCount(), 0)
}

func TestParse_JavaDocAttachedToInterface(t *testing.T) {
	src := `package p;
/**
 * Talks to the foo service.
 */
interface IFoo {
    void a();
}`
	a, h := parse(t, src)
	require.NotNil(t, a)
	assert.Equal(t, 0, h.ErrorCount())
	iface := a.Item.(*ast.Interface)
	assert.Contains(t, iface.Doc, "Talks to the foo service.")
}
