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

// Package eligibility decides whether a method may receive declared types, based on its class hierarchy.
package eligibility

import (
	"fillmore-labs.com/strictdoc/host"
	"fillmore-labs.com/strictdoc/rector/level"
)

// Guard checks methods against an eligibility level.
//
// A nil Classes resolver never resolves, so only [level.EligibilityAll] semantics apply.
type Guard struct {
	Level   level.Eligibility
	Classes host.ClassResolver
}

// Allows reports whether declared types may be added to the method.
//
// Methods whose owning class can't be resolved are allowed, only what is known is restricted.
func (g Guard) Allows(m host.Method) bool {
	if g.Level == level.EligibilityAll || g.Classes == nil {
		return true
	}

	class, ok := g.Classes.ResolveOwningClass(m)
	if !ok || class == nil {
		return true
	}

	switch g.Level {
	case level.EligibilityInterfaces:
		return class.IsInterface()

	case level.EligibilityNoOverrides:
		return !class.DeclaresMethodInAncestor(m.Name())

	default:
		return true
	}
}
