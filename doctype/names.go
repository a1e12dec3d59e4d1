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

import "strings"

// NameResolver resolves class names written in documentation.
type NameResolver interface {
	// ResolveClassName returns the fully qualified name for a name without leading backslash,
	// reporting whether it was resolved through an import alias.
	ResolveClassName(name string) (fqn string, imported bool)
}

// Imports resolves names against a namespace and its "use" imports.
type Imports struct {
	// Namespace is the current namespace, empty for the global namespace.
	Namespace string

	// Uses maps import aliases to fully qualified names.
	Uses map[string]string
}

// ResolveClassName implements [NameResolver].
//
// Aliases are matched case-insensitively and may prefix a qualified name.
func (i Imports) ResolveClassName(name string) (string, bool) {
	first, rest, qualified := strings.Cut(name, `\`)

	for alias, fqn := range i.Uses {
		if !strings.EqualFold(alias, first) {
			continue
		}

		fqn = strings.TrimPrefix(fqn, `\`)
		if qualified {
			return fqn + `\` + rest, true
		}

		return fqn, true
	}

	if i.Namespace == "" {
		return name, false
	}

	return strings.Trim(i.Namespace, `\`) + `\` + name, false
}
