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

package config_test

import (
	"testing"

	. "fillmore-labs.com/strictdoc/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	rules := NewBitMask(ParamRule, PropertyRule)

	if !rules.Enabled(ParamRule) || rules.Enabled(ReturnRule) || !rules.Enabled(PropertyRule) {
		t.Fatalf("Unexpected initial rules %+v", rules)
	}

	rules.Set(ReturnRule, true)
	rules.Set(ParamRule, false)

	if rules.Enabled(ParamRule) || !rules.Enabled(ReturnRule) {
		t.Errorf("Unexpected rules after update %+v", rules)
	}

	if rules.Enabled(AllRules) {
		t.Error("AllRules enabled with ParamRule disabled")
	}

	if rules.Enabled(0) {
		t.Error("Empty flag reported as enabled")
	}

	rules.Set(AllRules, false)
	if !rules.Empty() {
		t.Errorf("Expected empty rules, got %+v", rules)
	}

	if d := DefaultRules(); !d.Enabled(AllRules) {
		t.Errorf("Expected all rules enabled by default, got %+v", d)
	}
}
