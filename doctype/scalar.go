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

//go:generate go tool stringer -type ScalarKind -linecomment

// ScalarKind enumerates the scalar types in their canonical spelling.
type ScalarKind uint8

const (
	// Bool is the boolean type, also documented as "boolean".
	Bool ScalarKind = iota // bool

	// Int is the integer type, also documented as "integer".
	Int // int

	// Float is the floating point type, also documented as "double".
	Float // float

	// String is the string type.
	String // string
)

// scalarKeywords maps every accepted spelling to its kind.
var scalarKeywords = map[string]ScalarKind{
	"bool":    Bool,
	"boolean": Bool,
	"int":     Int,
	"integer": Int,
	"float":   Float,
	"double":  Float,
	"string":  String,
}
