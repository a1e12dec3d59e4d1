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

package lower

//go:generate go tool stringer -type Context -linecomment

// Context is the declaration site a type is lowered for.
type Context uint8

const (
	// MethodParam is a method parameter.
	MethodParam Context = iota // param

	// MethodReturn is a method return value.
	MethodReturn // return

	// Property is a class property.
	Property // property
)

// AllowsVoid reports whether void is a legal declared type for this site.
func (c Context) AllowsVoid() bool { return c == MethodReturn }
