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

package rector_test

import (
	"flag"
	"strings"
	"testing"

	"fillmore-labs.com/strictdoc/internal/config"
	. "fillmore-labs.com/strictdoc/rector"
)

func TestRuleValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.RuleFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.ReturnRule,
			args:    []string{"-params"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ParamRule,
			args:    []string{"-params=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.AllRules,
			args:    []string{"-params=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			fv := NewRuleValue(&rules, config.ParamRule)
			fs.Var(fv, "params", "add declared parameter types")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if rules.Enabled(config.ParamRule) != tt.want {
				t.Errorf("ParamRule enabled = %v, want %v", rules.Enabled(config.ParamRule), tt.want)
			}
		})
	}
}

func TestRuleValueInvalid(t *testing.T) {
	t.Parallel()

	rules := config.DefaultRules()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewRuleValue(&rules, config.ParamRule), "params", "add declared parameter types")

	if err := fs.Parse([]string{"-params=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs)

	var out strings.Builder
	fs.SetOutput(&out)
	fs.PrintDefaults()

	for _, want := range []string{
		"-params\n    \tadd declared parameter types (default true)",
		"-param-eligibility value\n    \tmethods receiving parameter types: all, interfaces or no-overrides (default all)",
		"-multi-property value\n    \tstatements declaring several properties: skip or reject (default skip)",
	} {
		if got := out.String(); !strings.Contains(got, want) {
			t.Errorf("PrintDefaults() = %q, want to contain %q", got, want)
		}
	}
}
