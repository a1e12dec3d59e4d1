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

package level_test

import (
	"encoding"
	"testing"

	. "fillmore-labs.com/strictdoc/rector/level"
)

type textValue interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value textValue
		fresh func() textValue
		text  string
	}{
		{"all", ptr(EligibilityAll), func() textValue { return new(Eligibility) }, "all"},
		{"interfaces", ptr(EligibilityInterfaces), func() textValue { return new(Eligibility) }, "interfaces"},
		{"no-overrides", ptr(EligibilityNoOverrides), func() textValue { return new(Eligibility) }, "no-overrides"},
		{"skip", ptr(MultiPropertySkip), func() textValue { return new(MultiProperty) }, "skip"},
		{"reject", ptr(MultiPropertyReject), func() textValue { return new(MultiProperty) }, "reject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := tt.value.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText failed: %v", err)
			}

			if got := string(text); got != tt.text {
				t.Errorf("MarshalText() = %q, want %q", got, tt.text)
			}

			v := tt.fresh()
			if err := v.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
			}

			if again, _ := v.MarshalText(); string(again) != tt.text {
				t.Errorf("UnmarshalText(%q) gives %q", text, again)
			}
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	var e Eligibility
	if err := e.UnmarshalText([]byte("classes")); err == nil {
		t.Error("Expected error for unknown eligibility level")
	}

	var m MultiProperty
	if err := m.UnmarshalText([]byte("split")); err == nil {
		t.Error("Expected error for unknown multi property level")
	}

	if _, err := Eligibility(99).MarshalText(); err == nil {
		t.Error("Expected error for invalid eligibility level")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	var e Eligibility
	if err := e.UnmarshalText(nil); err != nil || e != EligibilityAll {
		t.Errorf("Empty eligibility = %v, %v, want %v", e, err, EligibilityAll)
	}

	var m MultiProperty
	if err := m.UnmarshalText([]byte("")); err != nil || m != MultiPropertySkip {
		t.Errorf("Empty multi property = %v, %v, want %v", m, err, MultiPropertySkip)
	}
}

func ptr[T any](v T) *T { return &v }
