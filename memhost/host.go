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
	"slices"

	"fillmore-labs.com/strictdoc/host"
)

// Host implements the collaborators for declarations of this package.
//
// Nodes of other hosts are ignored.
type Host struct {
	invalidated map[*Param]struct{}
	refreshed   map[*Method]struct{}
}

var (
	_ host.TagRemover       = (*Host)(nil)
	_ host.DocBlockRenderer = (*Host)(nil)
	_ host.NodeInvalidator  = (*Host)(nil)
	_ host.ClassResolver    = (*Host)(nil)
)

// NewHost creates a new [Host].
func NewHost() *Host {
	return &Host{
		invalidated: make(map[*Param]struct{}),
		refreshed:   make(map[*Method]struct{}),
	}
}

// RemoveParamTagIfRedundant implements [host.TagRemover].
func (h *Host) RemoveParamTagIfRedundant(m host.Method, name string) bool {
	method, ok := m.(*Method)
	if !ok || method.Comment == nil {
		return false
	}

	p := method.param(name)
	if p == nil {
		return false
	}

	i, tag := method.Comment.param(name)
	if !redundant(tag, p.Declared, method.class.names()) {
		return false
	}

	method.Comment.Params = slices.Delete(method.Comment.Params, i, i+1)
	method.Comment = prune(method.Comment)

	return true
}

// RemoveReturnTagIfRedundant implements [host.TagRemover].
func (h *Host) RemoveReturnTagIfRedundant(m host.Method) bool {
	method, ok := m.(*Method)
	if !ok || method.Comment == nil {
		return false
	}

	if !redundant(method.Comment.Return, method.Returns, method.class.names()) {
		return false
	}

	method.Comment.Return = nil
	method.Comment = prune(method.Comment)

	return true
}

// RemoveVarTagIfRedundant implements [host.TagRemover].
func (h *Host) RemoveVarTagIfRedundant(p host.Property) bool {
	prop, ok := p.(*Property)
	if !ok || prop.Comment == nil {
		return false
	}

	if !redundant(prop.Comment.Var, prop.Declared, prop.class.names()) {
		return false
	}

	prop.Comment.Var = nil
	prop.Comment = prune(prop.Comment)

	return true
}

// Refresh implements [host.DocBlockRenderer].
func (h *Host) Refresh(m host.Method) {
	method, ok := m.(*Method)
	if !ok {
		return
	}

	method.Comment = prune(method.Comment)
	h.refreshed[method] = struct{}{}
}

// InvalidateOriginal implements [host.NodeInvalidator].
func (h *Host) InvalidateOriginal(p host.Param) {
	if param, ok := p.(*Param); ok {
		h.invalidated[param] = struct{}{}
	}
}

// ResolveOwningClass implements [host.ClassResolver].
func (h *Host) ResolveOwningClass(m host.Method) (host.ClassInfo, bool) {
	method, ok := m.(*Method)
	if !ok {
		return nil, false
	}

	c := method.Class()
	if c == nil {
		return nil, false
	}

	return c, true
}

// Invalidated reports whether the parameter was marked for printing from scratch.
func (h *Host) Invalidated(p *Param) bool {
	_, ok := h.invalidated[p]

	return ok
}

// Refreshed reports whether the documentation of the method was refreshed.
func (h *Host) Refreshed(m *Method) bool {
	_, ok := h.refreshed[m]

	return ok
}

// prune drops a documentation block left empty.
func prune(b *DocBlock) *DocBlock {
	if b.IsZero() {
		return nil
	}

	return b
}
