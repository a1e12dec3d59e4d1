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

package lower_test

import (
	"testing"

	"fillmore-labs.com/strictdoc/declared"
	"fillmore-labs.com/strictdoc/doctype"
	. "fillmore-labs.com/strictdoc/internal/lower"
)

var contexts = [...]Context{MethodParam, MethodReturn, Property}

func TestLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  doctype.Type
		want declared.Type
	}{
		{"class", doctype.Class{Name: `App\Models\Widget`}, declared.Class{Name: `App\Models\Widget`}},
		{"shortened", doctype.ShortenedClass{ShortName: "Widget", FullyQualifiedName: `App\Models\Widget`}, declared.Class{Name: `App\Models\Widget`}},
		{"array", doctype.Array{Expr: "array"}, declared.Array},
		{"shape", doctype.Array{Expr: "array{foo: string}"}, declared.Array},
		{"list", doctype.Array{Expr: "list<int>"}, declared.Array},
		{"iterable", doctype.Iterable{Expr: "iterable<int>"}, declared.Iterable},
		{"bool", doctype.Scalar{Kind: doctype.Bool}, declared.Bool},
		{"int", doctype.Scalar{Kind: doctype.Int}, declared.Int},
		{"float", doctype.Scalar{Kind: doctype.Float}, declared.Float},
		{"string", doctype.Scalar{Kind: doctype.String}, declared.String},
	}

	for _, tt := range tests {
		for _, ctx := range contexts {
			t.Run(tt.name+"_"+ctx.String(), func(t *testing.T) {
				t.Parallel()

				got, ok := Lower(tt.doc, ctx)
				if !ok {
					t.Fatalf("Lower(%v, %v) declined, want %v", tt.doc, ctx, tt.want)
				}

				if got != tt.want {
					t.Errorf("Lower(%v, %v) = %v, want %v", tt.doc, ctx, got, tt.want)
				}
			})
		}
	}
}

func TestLowerDeclines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  doctype.Type
	}{
		{"nil", nil},
		{"union", doctype.Unrepresentable{Expr: "string|int"}},
		{"nullable", doctype.Unrepresentable{Expr: "?string"}},
		{"mixed", doctype.Unrepresentable{Expr: "mixed"}},
		{"self", doctype.Unrepresentable{Expr: "self"}},
		{"generic", doctype.Unrepresentable{Expr: "Collection<int>"}},
	}

	for _, tt := range tests {
		for _, ctx := range contexts {
			t.Run(tt.name+"_"+ctx.String(), func(t *testing.T) {
				t.Parallel()

				if got, ok := Lower(tt.doc, ctx); ok {
					t.Errorf("Lower(%v, %v) = %v, want no result", tt.doc, ctx, got)
				}
			})
		}
	}
}

func TestLowerVoid(t *testing.T) {
	t.Parallel()

	for _, ctx := range contexts {
		t.Run(ctx.String(), func(t *testing.T) {
			t.Parallel()

			got, ok := Lower(doctype.Void{}, ctx)

			if ok != ctx.AllowsVoid() {
				t.Fatalf("Lower(void, %v) ok = %t, want %t", ctx, ok, ctx.AllowsVoid())
			}

			if ok && got != declared.Void {
				t.Errorf("Lower(void, %v) = %v, want %v", ctx, got, declared.Void)
			}
		})
	}
}

func TestAllowsVoid(t *testing.T) {
	t.Parallel()

	want := map[Context]bool{MethodParam: false, MethodReturn: true, Property: false}

	for ctx, allows := range want {
		if got := ctx.AllowsVoid(); got != allows {
			t.Errorf("%v.AllowsVoid() = %t, want %t", ctx, got, allows)
		}
	}
}
