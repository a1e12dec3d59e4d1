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

// Package lower translates documentation types to declared types.
package lower

import (
	"fillmore-labs.com/strictdoc/declared"
	"fillmore-labs.com/strictdoc/doctype"
)

// Lower returns the declared type for a documentation type at the given site,
// or false when there is no declared type that keeps the behavior of the code.
//
// The cases are checked in order, since the categories overlap:
// a shortened class is also an object type, an array is also iterable.
func Lower(doc doctype.Type, ctx Context) (declared.Type, bool) {
	if t, ok := doc.(doctype.ShortenedClass); ok {
		// The alias might bind to a different class in the declaration
		return declared.Class{Name: t.FullyQualifiedName}, true
	}

	if t, ok := doc.(doctype.ObjectType); ok {
		return declared.Class{Name: t.ClassName()}, true
	}

	if _, ok := doc.(doctype.ArrayLike); ok {
		// Shapes, keys and values can't be declared
		return declared.Array, true
	}

	if _, ok := doc.(doctype.IterableLike); ok {
		return declared.Iterable, true
	}

	if t, ok := doc.(doctype.Scalar); ok {
		return declared.Keyword(t.Kind.String()), true
	}

	if _, ok := doc.(doctype.Void); ok && ctx.AllowsVoid() {
		return declared.Void, true
	}

	return nil, false
}
