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

package memhost

import (
	"fillmore-labs.com/strictdoc/doctype"
	"fillmore-labs.com/strictdoc/host"
)

// docInfo parses tag types on demand. Types that fail to parse are unrepresentable.
type docInfo struct {
	block *DocBlock
	names doctype.NameResolver
}

var _ host.DocInfo = docInfo{}

func (d docInfo) ParamType(name string) (doctype.Type, bool) {
	if d.block == nil {
		return nil, false
	}

	_, tag := d.block.param(name)
	if tag == nil {
		return nil, false
	}

	return d.parse(tag), true
}

func (d docInfo) ReturnType() (doctype.Type, bool) {
	if d.block == nil || d.block.Return == nil {
		return nil, false
	}

	return d.parse(d.block.Return), true
}

func (d docInfo) VarType() (doctype.Type, bool) {
	if d.block == nil || d.block.Var == nil {
		return nil, false
	}

	return d.parse(d.block.Var), true
}

func (d docInfo) parse(tag *Tag) doctype.Type {
	t, err := doctype.Parse(tag.Type, d.names)
	if err != nil {
		return doctype.Unrepresentable{Expr: tag.Type}
	}

	return t
}

func (b *DocBlock) param(name string) (int, *Tag) {
	for i, tag := range b.Params {
		if tag.Name == name {
			return i, tag
		}
	}

	return -1, nil
}

// IsZero reports whether the block has neither summary nor tags.
func (b *DocBlock) IsZero() bool {
	return b == nil || b.Summary == "" && len(b.Params) == 0 && b.Return == nil && b.Var == nil
}

// redundant reports whether a tag adds nothing to a declared type:
// it has no description and denotes exactly the declared type. Scalar aliases like "integer" count as equal.
func redundant(tag *Tag, decl string, names doctype.NameResolver) bool {
	if tag == nil || tag.Description != "" || decl == "" {
		return false
	}

	t, err := doctype.Parse(tag.Type, names)
	if err != nil {
		return false
	}

	switch t := t.(type) {
	case doctype.Class:
		return decl == t.String()

	case doctype.ShortenedClass:
		return decl == `\`+t.FullyQualifiedName

	case doctype.Array:
		return t.Plain() && decl == "array"

	case doctype.Iterable:
		return t.Plain() && decl == "iterable"

	case doctype.Scalar:
		return decl == t.Kind.String()

	case doctype.Void:
		return decl == "void"

	default:
		return false
	}
}
