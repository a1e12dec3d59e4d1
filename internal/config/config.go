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

package config

// RuleFlags represents specific rules.
type RuleFlags uint8

const (
	// ParamRule adds declared parameter types from "@param" tags.
	ParamRule RuleFlags = 1 << iota

	// ReturnRule adds declared return types from "@return" tags.
	ReturnRule

	// PropertyRule adds declared property types from "@var" tags.
	PropertyRule

	// AllRules enables every rule.
	AllRules = ParamRule | ReturnRule | PropertyRule
)

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns the rules enabled by default.
func DefaultRules() Rules {
	return NewBitMask(AllRules)
}
