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

// Package doctype models types written in documentation comments.
//
// Documentation types are more expressive than declared types: they describe unions,
// array shapes, generics and literal values. This package only distinguishes the
// shapes that matter for promoting them to declared types:
//
//   - [Class] and [ShortenedClass] for nominal class references
//   - [Array] for anything array-like, like "int[]", "list<string>" or "array{foo: string}"
//   - [Iterable] for "iterable" with or without type arguments
//   - [Scalar] for bool, int, float and string
//   - [Void]
//   - [Unrepresentable] for everything else
//
// [Parse] classifies a type expression as found in "@param", "@return" and "@var" tags.
package doctype
