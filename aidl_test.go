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

package aidl

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidl-tools/aidl/ast"
	"github.com/aidl-tools/aidl/walk"
)

func messages(r ParseFileResult) []string {
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.Message
	}
	sort.Strings(out)
	return out
}

// diagSummary is the golden-comparable projection of an ast.Diagnostic:
// just kind and message, since exact byte ranges would make these goldens
// unreadably brittle to tweak.
type diagSummary struct {
	Kind    string
	Message string
}

func summarizeDiagnostics(ds []ast.Diagnostic) []diagSummary {
	if len(ds) == 0 {
		return nil
	}
	out := make([]diagSummary, len(ds))
	for i, d := range ds {
		out[i] = diagSummary{Kind: d.Kind.String(), Message: d.Message}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Message != out[j].Message {
			return out[i].Message < out[j].Message
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// TestValidate_DiagnosticGoldens pins the exact diagnostic set produced for
// a handful of representative inputs, including the "no diagnostics at
// all" case that plain assert.Contains checks elsewhere in this file can't
// express: cmp.Diff fails loudly if an unexpected diagnostic sneaks in
// alongside the ones under test, not just if an expected one goes missing.
func TestValidate_DiagnosticGoldens(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
		want  map[string][]diagSummary
	}{
		{
			name: "clean interface produces no diagnostics",
			files: map[string]string{
				"a/IFoo.aidl": `package a;
interface IFoo {
    void take(int id);
}`,
			},
			want: map[string][]diagSummary{
				"a/IFoo.aidl": nil,
			},
		},
		{
			name: "duplicate transact code",
			files: map[string]string{
				"a/IFoo.aidl": `package a;
interface IFoo {
    void a() = 1;
    void b() = 1;
}`,
			},
			want: map[string][]diagSummary{
				"a/IFoo.aidl": {
					{Kind: "error", Message: "Duplicated method id"},
				},
			},
		},
		{
			name: "unresolved import and unresolved type together",
			files: map[string]string{
				"a/IFoo.aidl": `package a;
import a.Missing;
interface IFoo {
    void take(in Ghost g);
}`,
			},
			want: map[string][]diagSummary{
				"a/IFoo.aidl": {
					{Kind: "error", Message: "Unresolved import"},
					{Kind: "warning", Message: "Unresolved type"},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser()
			for key, src := range tc.files {
				p.AddContent(key, []byte(src))
			}
			results := p.Validate(context.Background())
			for key, want := range tc.want {
				got := summarizeDiagnostics(results[key].Diagnostics)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("diagnostics for %s mismatch (-want +got):\n%s", key, diff)
				}
			}
		})
	}
}

func TestValidate_InterfaceEnumParcelableTrio(t *testing.T) {
	p := NewParser()
	p.AddContent("a/Status.aidl", []byte(`package a;
enum Status {
    OK,
    FAILED,
}`))
	p.AddContent("a/Data.aidl", []byte(`package a;
import a.Status;
parcelable Data {
    int id;
    Status status;
}`))
	p.AddContent("a/IFoo.aidl", []byte(`package a;
import a.Data;
interface IFoo {
    const int VERSION = 1;
    Data fetch(int id);
    oneway void notify(in Data d);
}`))

	results := p.Validate(context.Background())
	require.Len(t, results, 3)
	for key, r := range results {
		assert.Empty(t, messages(r), "unexpected diagnostics for %s", key)
		assert.NotNil(t, r.AST, "expected an AST for %s", key)
	}
}

func TestValidate_DuplicateImportAcrossOneFile(t *testing.T) {
	p := NewParser()
	p.AddContent("a/Data.aidl", []byte(`package a;
parcelable Data {}`))
	p.AddContent("a/IFoo.aidl", []byte(`package a;
import a.Data;
import a.Data;
interface IFoo {
    void take(in Data d);
}`))

	results := p.Validate(context.Background())
	assert.Contains(t, messages(results["a/IFoo.aidl"]), "Duplicated import")
}

func TestValidate_OnewayMisuseReturnTypeAndOutArg(t *testing.T) {
	p := NewParser()
	p.AddContent("a/IFoo.aidl", []byte(`package a;
interface IFoo {
    oneway int bad1();
    oneway void bad2(out int[] xs);
}`))

	results := p.Validate(context.Background())
	msgs := messages(results["a/IFoo.aidl"])
	assert.Contains(t, msgs, "Oneway method must return void")
	assert.Contains(t, msgs, "Oneway method cannot have out/inout args")
}

func TestValidate_TransactCodesDuplicateAndMixed(t *testing.T) {
	p := NewParser()
	p.AddContent("a/IFoo.aidl", []byte(`package a;
interface IFoo {
    void a() = 1;
    void b() = 1;
}`))
	p.AddContent("a/IBar.aidl", []byte(`package a;
interface IBar {
    void a() = 1;
    void b();
}`))

	results := p.Validate(context.Background())
	assert.Contains(t, messages(results["a/IFoo.aidl"]), "Duplicated method id")
	assert.Contains(t, messages(results["a/IBar.aidl"]), "Mixed methods with and without id")
}

func TestValidate_UnresolvedTypeAcrossParser(t *testing.T) {
	p := NewParser()
	p.AddContent("a/IFoo.aidl", []byte(`package a;
interface IFoo {
    void take(in GhostType g);
}`))

	results := p.Validate(context.Background())
	assert.Contains(t, messages(results["a/IFoo.aidl"]), "Unresolved type")
}

func TestValidate_FindSymbolAtLineColOnValidatedAST(t *testing.T) {
	p := NewParser()
	p.AddContent("a/IFoo.aidl", []byte(`package a;
interface IFoo {
    void doThing();
}`))

	results := p.Validate(context.Background())
	r := results["a/IFoo.aidl"]
	require.NotNil(t, r.AST)

	sym, ok := walk.FindSymbolAtLineCol(r.AST, walk.ItemsAndItemElements, ast.Position{Line: 3, Column: 10})
	require.True(t, ok)
	assert.Equal(t, walk.KindMethod, sym.Kind)
	name, _ := sym.GetName()
	assert.Equal(t, "doThing", name)
}

func TestValidate_EmptyParserReturnsEmptyMap(t *testing.T) {
	p := NewParser()
	results := p.Validate(context.Background())
	assert.Empty(t, results)
}

func TestValidate_MalformedFileStillReturnsOthers(t *testing.T) {
	p := NewParser()
	p.AddContent("a/Good.aidl", []byte(`package a;
parcelable Good {}`))
	p.AddContent("a/Bad.aidl", []byte(`not even close to aidl source +++`))

	results := p.Validate(context.Background())
	require.Len(t, results, 2)
	assert.Nil(t, results["a/Bad.aidl"].AST)
	assert.NotEmpty(t, results["a/Bad.aidl"].Diagnostics)
	assert.NotNil(t, results["a/Good.aidl"].AST)
	assert.Empty(t, results["a/Good.aidl"].Diagnostics)
}
