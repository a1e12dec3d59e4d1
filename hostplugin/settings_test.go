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

package hostplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	. "fillmore-labs.com/strictdoc/hostplugin"
	"fillmore-labs.com/strictdoc/rector"
	"fillmore-labs.com/strictdoc/rector/level"
)

const allSettings = `{
	"params": true,
	"returns": false,
	"properties": true,
	"param-eligibility": "no-overrides",
	"return-eligibility": "interfaces",
	"multi-property": "reject"
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), got.LogValue(), tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	const config = `
returns: false
param-eligibility: interfaces
multi-property: reject
`

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(config), &raw); err != nil {
		t.Fatalf("Can't unmarshal config: %v", err)
	}

	p, err := New(raw)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := p.Settings()

	if s.Returns == nil || *s.Returns {
		t.Errorf("Returns = %v, want false", s.Returns)
	}

	if s.ParamEligibility == nil || *s.ParamEligibility != level.EligibilityInterfaces {
		t.Errorf("ParamEligibility = %v, want %v", s.ParamEligibility, level.EligibilityInterfaces)
	}

	if s.MultiProperty == nil || *s.MultiProperty != level.MultiPropertyReject {
		t.Errorf("MultiProperty = %v, want %v", s.MultiProperty, level.MultiPropertyReject)
	}

	if s.Params != nil || s.ReturnEligibility != nil {
		t.Errorf("Unexpected settings: %+v", s)
	}

	var names []string
	for _, r := range p.Build(rector.Host{}).Rules() {
		names = append(names, r.Name())
	}

	if got, want := strings.Join(names, ","), "param-type-from-doc,property-type-from-doc"; got != want {
		t.Errorf("Rules = %s, want %s", got, want)
	}

	// later options override settings
	names = names[:0]
	for _, r := range p.Build(rector.Host{}, rector.WithReturns(true)).Rules() {
		names = append(names, r.Name())
	}

	if got := len(names); got != 3 {
		t.Errorf("Got %d rules, want 3", got)
	}
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	if _, err := New(map[string]any{"param-eligibility": "some"}); err == nil {
		t.Error("Expected error for unknown eligibility level")
	}
}
