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

// Package declared models the types that can be written in declaration position.
package declared

// Type is a declared type of a parameter, property or return value.
//
// Values are comparable.
type Type interface {
	// String returns the source spelling of the type.
	String() string

	declaredType()
}

// Class is a nominal class type, always written fully qualified.
type Class struct {
	// Name is the fully qualified name without a leading backslash.
	Name string
}

// String returns the fully qualified name with a leading backslash, independent of any imports.
func (c Class) String() string { return `\` + c.Name }

func (Class) declaredType() {}

// Keyword is a built-in declared type.
type Keyword string

// Built-in declared types.
const (
	Array    Keyword = "array"
	Iterable Keyword = "iterable"
	Void     Keyword = "void"
	Bool     Keyword = "bool"
	Int      Keyword = "int"
	Float    Keyword = "float"
	String   Keyword = "string"
)

func (k Keyword) String() string { return string(k) }

func (Keyword) declaredType() {}
