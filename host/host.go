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

// Package host defines the declaration nodes and collaborators a refactoring host provides.
//
// The rules never parse, traverse or print source themselves. A host hands them one declaration at a time
// and implements the collaborators for documentation tag cleanup and class lookup.
package host

import (
	"fillmore-labs.com/strictdoc/declared"
	"fillmore-labs.com/strictdoc/doctype"
)

//go:generate go tool mockgen -destination=../internal/mocks/host.go -package=mocks . TagRemover,DocBlockRenderer,NodeInvalidator,ClassResolver,ClassInfo

// Method is a method declaration.
type Method interface {
	Name() string
	Params() []Param

	// ReturnTyped reports whether the method has a declared return type.
	ReturnTyped() bool
	SetReturnType(t declared.Type)

	Doc() DocInfo
}

// Param is a parameter of a [Method].
type Param interface {
	Name() string

	// Typed reports whether the parameter has a declared type.
	Typed() bool
	SetType(t declared.Type)

	// Promoted reports whether the parameter carries visibility modifiers,
	// declaring a property from a constructor.
	Promoted() bool
}

// Property is a property statement, possibly declaring more than one property.
type Property interface {
	Names() []string

	// Typed reports whether the statement has a declared type.
	Typed() bool
	SetType(t declared.Type)

	Doc() DocInfo
}

// DocInfo gives access to the parsed documentation types of a declaration.
type DocInfo interface {
	// ParamType returns the type of the "@param" tag for the named parameter.
	ParamType(name string) (doctype.Type, bool)

	// ReturnType returns the type of the "@return" tag.
	ReturnType() (doctype.Type, bool)

	// VarType returns the type of the "@var" tag.
	VarType() (doctype.Type, bool)
}

// TagRemover removes documentation tags that add nothing to the declared type.
//
// Each method reports whether a tag was removed.
type TagRemover interface {
	RemoveParamTagIfRedundant(m Method, name string) bool
	RemoveReturnTagIfRedundant(m Method) bool
	RemoveVarTagIfRedundant(p Property) bool
}

// DocBlockRenderer updates the printed documentation comment of a method after tags were removed.
type DocBlockRenderer interface {
	Refresh(m Method)
}

// NodeInvalidator marks a node whose original source representation must not be reused when printing.
type NodeInvalidator interface {
	InvalidateOriginal(p Param)
}

// ClassResolver finds the class declaring a method.
type ClassResolver interface {
	ResolveOwningClass(m Method) (ClassInfo, bool)
}

// ClassInfo describes a resolved class or interface.
type ClassInfo interface {
	IsInterface() bool

	// DeclaresMethodInAncestor reports whether a parent class or an implemented interface declares the named method.
	DeclaresMethodInAncestor(name string) bool
}
