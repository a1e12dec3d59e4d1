// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package memhost_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"fillmore-labs.com/strictdoc/declared"
	"fillmore-labs.com/strictdoc/doctype"
	. "fillmore-labs.com/strictdoc/memhost"
)

const hierarchy = `
namespace: App
uses:
  Ext: Vendor\Ext
classes:
  - name: Contract
    interface: true
    methods:
      - name: handle
  - name: Base
    extends: [Contract]
    methods:
      - name: Boot
  - name: Child
    extends: ['\App\Base', Ext\Missing]
    methods:
      - name: handle
      - name: boot
      - name: own
`

func load(t *testing.T, src string) *File {
	t.Helper()

	f, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Can't load file: %v", err)
	}

	return f
}

func TestDeclaresMethodInAncestor(t *testing.T) {
	t.Parallel()

	f := load(t, hierarchy)
	child := f.Classes[2]

	tests := []struct {
		method string
		want   bool
	}{
		{"handle", true},
		{"BOOT", true},
		{"own", false},
		{"missing", false},
	}

	for _, tt := range tests {
		if got := child.DeclaresMethodInAncestor(tt.method); got != tt.want {
			t.Errorf("DeclaresMethodInAncestor(%q) = %t, want %t", tt.method, got, tt.want)
		}
	}

	if f.Classes[0].DeclaresMethodInAncestor("handle") {
		t.Error("Interface without parents declares no inherited methods")
	}

	if got, want := child.FullyQualifiedName(), `App\Child`; got != want {
		t.Errorf("FullyQualifiedName() = %q, want %q", got, want)
	}
}

func TestResolveOwningClass(t *testing.T) {
	t.Parallel()

	f := load(t, hierarchy)
	h := NewHost()

	info, ok := h.ResolveOwningClass(f.Classes[0].Methods[0])
	if !ok || !info.IsInterface() {
		t.Errorf("ResolveOwningClass() = %v, %t, want interface", info, ok)
	}

	if got := f.Classes[2].Methods[0].Class(); got != f.Classes[2] {
		t.Errorf("Class() = %v, want %v", got, f.Classes[2])
	}

	if _, ok := h.ResolveOwningClass(&Method{Ident: "detached"}); ok {
		t.Error("Detached method has no owning class")
	}
}

func TestDocInfo(t *testing.T) {
	t.Parallel()

	const src = `
namespace: App
uses:
  Widget: App\Models\Widget
classes:
  - name: Runner
    methods:
      - name: run
        doc:
          params:
            - {name: w, type: Widget}
            - {name: broken, type: 'array<int'}
          return: {type: void}
        params:
          - name: w
          - name: broken
    properties:
      - names: [items]
        doc:
          var: {type: 'string[]'}
`

	f := load(t, src)
	m := f.Classes[0].Methods[0]
	doc := m.Doc()

	tests := []struct {
		name string
		get  func() (doctype.Type, bool)
		want doctype.Type
	}{
		{"imported", func() (doctype.Type, bool) { return doc.ParamType("w") }, doctype.ShortenedClass{ShortName: "Widget", FullyQualifiedName: `App\Models\Widget`}},
		{"broken", func() (doctype.Type, bool) { return doc.ParamType("broken") }, doctype.Unrepresentable{Expr: "array<int"}},
		{"return", doc.ReturnType, doctype.Void{}},
		{"var", f.Classes[0].Properties[0].Doc().VarType, doctype.Array{Expr: "string[]"}},
	}

	for _, tt := range tests {
		got, ok := tt.get()
		if !ok {
			t.Errorf("%s: no documentation type", tt.name)

			continue
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	if _, ok := doc.ParamType("missing"); ok {
		t.Error("Undocumented parameter has a documentation type")
	}

	if _, ok := doc.VarType(); ok {
		t.Error("Method documentation has a @var type")
	}
}

func TestRemoveTags(t *testing.T) {
	t.Parallel()

	const src = `
namespace: App
uses:
  Widget: App\Models\Widget
classes:
  - name: Runner
    methods:
      - name: run
        doc:
          params:
            - {name: a, type: string}
            - {name: b, type: int, description: counter}
            - {name: c, type: array<int>}
            - {name: d, type: Widget}
            - {name: e, type: integer}
          return: {type: Widget}
        params:
          - {name: a, type: string}
          - {name: b, type: int}
          - {name: c, type: array}
          - {name: d, type: '\App\Models\Widget'}
          - {name: e, type: int}
        returns: '\App\Models\Widget'
`

	f := load(t, src)
	m := f.Classes[0].Methods[0]
	h := NewHost()

	tests := []struct {
		param string
		want  bool
	}{
		{"a", true},
		{"b", false},
		{"c", false},
		{"d", true},
		{"e", true},
		{"missing", false},
	}

	for _, tt := range tests {
		if got := h.RemoveParamTagIfRedundant(m, tt.param); got != tt.want {
			t.Errorf("RemoveParamTagIfRedundant(%q) = %t, want %t", tt.param, got, tt.want)
		}
	}

	if !h.RemoveReturnTagIfRedundant(m) {
		t.Error("Expected return tag to be removed")
	}

	want := &DocBlock{Params: []*Tag{
		{Name: "b", Type: "int", Description: "counter"},
		{Name: "c", Type: "array<int>"},
	}}

	if diff := cmp.Diff(want, m.Comment); diff != "" {
		t.Errorf("Documentation mismatch (-want +got):\n%s", diff)
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	const src = `
classes:
  - name: Runner
    methods:
      - name: run
        doc:
          return: {type: bool}
        returns: bool
      - name: stop
        doc:
          summary: Stops.
          return: {type: bool}
        returns: bool
    properties:
      - names: [flag]
        type: bool
        doc:
          var: {type: bool}
`

	f := load(t, src)
	c := f.Classes[0]
	h := NewHost()

	for _, m := range c.Methods {
		if !h.RemoveReturnTagIfRedundant(m) {
			t.Errorf("Expected return tag of %s to be removed", m.Ident)
		}

		h.Refresh(m)

		if !h.Refreshed(m) {
			t.Errorf("Expected %s to be refreshed", m.Ident)
		}
	}

	if c.Methods[0].Comment != nil {
		t.Errorf("Expected empty documentation to be dropped, got %+v", c.Methods[0].Comment)
	}

	if got := c.Methods[1].Comment; got == nil || got.Summary != "Stops." {
		t.Errorf("Expected summary to be kept, got %+v", got)
	}

	if !h.RemoveVarTagIfRedundant(c.Properties[0]) || c.Properties[0].Comment != nil {
		t.Errorf("Expected @var tag to be removed, got %+v", c.Properties[0].Comment)
	}
}

func TestInvalidateOriginal(t *testing.T) {
	t.Parallel()

	p := &Param{Ident: "x", Visibility: "private"}
	h := NewHost()

	if h.Invalidated(p) {
		t.Error("Parameter invalidated before")
	}

	h.InvalidateOriginal(p)

	if !h.Invalidated(p) || !p.Promoted() {
		t.Error("Expected promoted parameter to be invalidated")
	}
}

func TestSetType(t *testing.T) {
	t.Parallel()

	f := load(t, hierarchy)
	m := f.Classes[2].Methods[2]

	m.SetReturnType(declared.Class{Name: `App\Base`})

	if !m.ReturnTyped() || m.Returns != `\App\Base` {
		t.Errorf("SetReturnType() gives %q", m.Returns)
	}

	p := &Property{Idents: []string{"x"}}
	p.SetType(declared.Iterable)

	if !p.Typed() || p.Declared != "iterable" {
		t.Errorf("SetType() gives %q", p.Declared)
	}
}

func TestLoadEncode(t *testing.T) {
	t.Parallel()

	f := load(t, hierarchy)

	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	again := load(t, buf.String())

	opts := cmp.Options{
		cmpopts.IgnoreUnexported(File{}, Class{}, Method{}, Property{}),
		cmpopts.EquateEmpty(),
	}

	if diff := cmp.Diff(f, again, opts); diff != "" {
		t.Errorf("Encoded file mismatch (-want +got):\n%s", diff)
	}

	if !again.Classes[2].DeclaresMethodInAncestor("boot") {
		t.Error("Reloaded file lost its class index")
	}
}

func TestLoadUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := Load(strings.NewReader("classes:\n  - name: X\n    abstract: true\n")); err == nil {
		t.Error("Expected error for unknown field")
	}
}
