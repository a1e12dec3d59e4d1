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

package doctype

// Type is a documentation type as produced by a doc comment parser.
//
// The set of implementations is closed; hosts construct the variants of this package directly or use [Parse].
type Type interface {
	// String returns the documentation spelling of the type.
	String() string

	docType()
}

// ObjectType is implemented by documentation types referring to a nominal class.
type ObjectType interface {
	Type

	// ClassName returns the name the class is referenced by in documentation.
	ClassName() string
}

// ArrayLike is implemented by array documentation types, including shaped and generic forms.
type ArrayLike interface {
	Type

	arrayLike()
}

// IterableLike is implemented by documentation types that are iterable.
type IterableLike interface {
	Type

	iterableLike()
}

// Class is a reference to a class by its fully qualified name.
type Class struct {
	// Name is the fully qualified name without a leading backslash.
	Name string
}

func (t Class) String() string { return `\` + t.Name }

// ClassName implements [ObjectType].
func (t Class) ClassName() string { return t.Name }

func (Class) docType() {}

// ShortenedClass is a class reference only resolvable through an import alias in scope.
type ShortenedClass struct {
	// ShortName is the name as written in documentation.
	ShortName string

	// FullyQualifiedName is the resolved name without a leading backslash.
	FullyQualifiedName string
}

func (t ShortenedClass) String() string { return t.ShortName }

// ClassName implements [ObjectType], returning the name as written.
func (t ShortenedClass) ClassName() string { return t.ShortName }

func (ShortenedClass) docType() {}

// Array is an array documentation type. Key, value and shape information only survives in Expr.
type Array struct {
	Expr string
}

func (t Array) String() string {
	if t.Expr == "" {
		return "array"
	}

	return t.Expr
}

// Plain reports whether the type is spelled exactly as the array keyword.
func (t Array) Plain() bool { return t.Expr == "" || t.Expr == "array" }

func (Array) docType()      {}
func (Array) arrayLike()    {}
func (Array) iterableLike() {}

// Iterable is an iterable documentation type, possibly generic.
type Iterable struct {
	Expr string
}

func (t Iterable) String() string {
	if t.Expr == "" {
		return "iterable"
	}

	return t.Expr
}

// Plain reports whether the type is spelled exactly as the iterable keyword.
func (t Iterable) Plain() bool { return t.Expr == "" || t.Expr == "iterable" }

func (Iterable) docType()      {}
func (Iterable) iterableLike() {}

// Scalar is one of the scalar types.
type Scalar struct {
	Kind ScalarKind
}

func (t Scalar) String() string { return t.Kind.String() }

func (Scalar) docType() {}

// Void is the void documentation type.
type Void struct{}

func (Void) String() string { return "void" }

func (Void) docType() {}

// Unrepresentable is any documentation type without a declared type equivalent:
// unions, intersections, nullable types, generic classes, literals, mixed, self and static.
type Unrepresentable struct {
	Expr string
}

func (t Unrepresentable) String() string { return t.Expr }

func (Unrepresentable) docType() {}
