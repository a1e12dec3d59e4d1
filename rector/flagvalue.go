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

package rector

import (
	"flag"
	"strconv"

	"fillmore-labs.com/strictdoc/internal/config"
)

// ruleValue is a boolean [flag.Value] toggling a single rule in a rule set.
type ruleValue struct {
	rules *config.Rules
	rule  config.RuleFlags
}

var _ flag.Getter = ruleValue{}

// newRuleValue returns a [flag.Value] enabling or disabling rule in rules.
func newRuleValue(rules *config.Rules, rule config.RuleFlags) ruleValue {
	return ruleValue{rules: rules, rule: rule}
}

// Set implements [flag.Value].
func (v ruleValue) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.rules.Set(v.rule, enabled)

	return nil
}

// String implements [flag.Value]. It is called on the zero value for usage messages.
func (v ruleValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v ruleValue) Get() any { return v.enabled() }

// IsBoolFlag marks this as a boolean flag, allowing "-params" without value.
func (v ruleValue) IsBoolFlag() bool { return true }

func (v ruleValue) enabled() bool {
	return v.rules != nil && v.rules.Enabled(v.rule)
}

// parseBool accepts the spellings of [strconv.ParseBool] plus "on" and "off".
func parseBool(str string) (bool, error) {
	switch str {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	b, err := strconv.ParseBool(str)
	if err != nil {
		return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
	}

	return b, nil
}
