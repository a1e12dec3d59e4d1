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
	"strings"

	"fillmore-labs.com/strictdoc/declared"
	"fillmore-labs.com/strictdoc/doctype"
	"fillmore-labs.com/strictdoc/host"
)

// File is a set of classes sharing a namespace and imports.
type File struct {
	Namespace string            `yaml:"namespace,omitempty"`
	Uses      map[string]string `yaml:"uses,omitempty"`
	Classes   []*Class          `yaml:"classes"`

	index map[string]*Class
}

// Class is a class or interface declaration.
type Class struct {
	Ident      string      `yaml:"name"`
	Interface  bool        `yaml:"interface,omitempty"`
	Extends    []string    `yaml:"extends,omitempty"`
	Methods    []*Method   `yaml:"methods,omitempty"`
	Properties []*Property `yaml:"properties,omitempty"`

	file *File
}

// Method is a method declaration.
type Method struct {
	Ident      string    `yaml:"name"`
	Comment    *DocBlock `yaml:"doc,omitempty"`
	Parameters []*Param  `yaml:"params,omitempty"`
	Returns    string    `yaml:"returns,omitempty"`

	class *Class
}

// Param is a method parameter. A non-empty Visibility marks a promoted constructor parameter.
type Param struct {
	Ident      string `yaml:"name"`
	Declared   string `yaml:"type,omitempty"`
	Visibility string `yaml:"visibility,omitempty"`
}

// Property is a property statement.
type Property struct {
	Idents   []string  `yaml:"names"`
	Declared string    `yaml:"type,omitempty"`
	Comment  *DocBlock `yaml:"doc,omitempty"`

	class *Class
}

// DocBlock is a parsed documentation comment.
type DocBlock struct {
	Summary string `yaml:"summary,omitempty"`
	Params  []*Tag `yaml:"params,omitempty"`
	Return  *Tag   `yaml:"return,omitempty"`
	Var     *Tag   `yaml:"var,omitempty"`
}

// Tag is a documentation tag. Name is only used by "@param" tags.
type Tag struct {
	Name        string `yaml:"name,omitempty"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

var (
	_ host.Method    = (*Method)(nil)
	_ host.Param     = (*Param)(nil)
	_ host.Property  = (*Property)(nil)
	_ host.ClassInfo = (*Class)(nil)
)

// Name implements [host.Method].
func (m *Method) Name() string { return m.Ident }

// Params implements [host.Method].
func (m *Method) Params() []host.Param {
	params := make([]host.Param, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p
	}

	return params
}

// ReturnTyped implements [host.Method].
func (m *Method) ReturnTyped() bool { return m.Returns != "" }

// SetReturnType implements [host.Method].
func (m *Method) SetReturnType(t declared.Type) { m.Returns = t.String() }

// Doc implements [host.Method].
func (m *Method) Doc() host.DocInfo { return docInfo{m.Comment, m.class.names()} }

// Class returns the declaring class, nil for a detached method.
func (m *Method) Class() *Class { return m.class }

func (m *Method) param(name string) *Param {
	for _, p := range m.Parameters {
		if p.Ident == name {
			return p
		}
	}

	return nil
}

// Name implements [host.Param].
func (p *Param) Name() string { return p.Ident }

// Typed implements [host.Param].
func (p *Param) Typed() bool { return p.Declared != "" }

// SetType implements [host.Param].
func (p *Param) SetType(t declared.Type) { p.Declared = t.String() }

// Promoted implements [host.Param].
func (p *Param) Promoted() bool { return p.Visibility != "" }

// Names implements [host.Property].
func (p *Property) Names() []string { return p.Idents }

// Typed implements [host.Property].
func (p *Property) Typed() bool { return p.Declared != "" }

// SetType implements [host.Property].
func (p *Property) SetType(t declared.Type) { p.Declared = t.String() }

// Doc implements [host.Property].
func (p *Property) Doc() host.DocInfo { return docInfo{p.Comment, p.class.names()} }

// FullyQualifiedName returns the class name including the namespace.
func (c *Class) FullyQualifiedName() string {
	if c.file == nil || c.file.Namespace == "" {
		return c.Ident
	}

	return strings.Trim(c.file.Namespace, `\`) + `\` + c.Ident
}

// IsInterface implements [host.ClassInfo].
func (c *Class) IsInterface() bool { return c.Interface }

// DeclaresMethodInAncestor implements [host.ClassInfo].
//
// Only ancestors declared in the same [File] are known.
func (c *Class) DeclaresMethodInAncestor(name string) bool {
	seen := map[*Class]struct{}{c: {}}
	queue := c.parents()

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		if _, ok := seen[parent]; ok {
			continue
		}

		seen[parent] = struct{}{}

		for _, m := range parent.Methods {
			if strings.EqualFold(m.Ident, name) {
				return true
			}
		}

		queue = append(queue, parent.parents()...)
	}

	return false
}

func (c *Class) parents() []*Class {
	if c.file == nil {
		return nil
	}

	var parents []*Class

	for _, name := range c.Extends {
		if parent, ok := c.file.lookup(name); ok {
			parents = append(parents, parent)
		}
	}

	return parents
}

// names returns the resolver for class names in documentation, nil for detached declarations.
func (c *Class) names() doctype.NameResolver {
	if c == nil || c.file == nil {
		return nil
	}

	return c.file.imports()
}

func (f *File) imports() doctype.Imports {
	return doctype.Imports{Namespace: f.Namespace, Uses: f.Uses}
}

// lookup finds a class by a name as written in the file.
func (f *File) lookup(name string) (*Class, bool) {
	fqn, ok := strings.CutPrefix(name, `\`)
	if !ok {
		fqn, _ = f.imports().ResolveClassName(name)
	}

	c, ok := f.index[strings.ToLower(fqn)]

	return c, ok
}

// link sets the back references and the class index after decoding.
func (f *File) link() {
	f.index = make(map[string]*Class, len(f.Classes))

	for _, c := range f.Classes {
		c.file = f
		f.index[strings.ToLower(c.FullyQualifiedName())] = c

		for _, m := range c.Methods {
			m.class = c
		}

		for _, p := range c.Properties {
			p.class = c
		}
	}
}
