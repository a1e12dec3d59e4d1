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

package hostplugin

import (
	"fillmore-labs.com/strictdoc/rector"
	"fillmore-labs.com/strictdoc/rector/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Params enables declared parameter types.
	Params *bool `json:"params,omitzero"`
	// Returns enables declared return types.
	Returns *bool `json:"returns,omitzero"`
	// Properties enables declared property types.
	Properties *bool `json:"properties,omitzero"`
	// ParamEligibility restricts the methods receiving parameter types.
	ParamEligibility *level.Eligibility `json:"param-eligibility,omitzero"`
	// ReturnEligibility restricts the methods receiving return types.
	ReturnEligibility *level.Eligibility `json:"return-eligibility,omitzero"`
	// MultiProperty decides on statements declaring several properties.
	MultiProperty *level.MultiProperty `json:"multi-property,omitzero"`
}

// Options converts [Settings] into a list of [rector.Option].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() rector.Options {
	var opts rector.Options

	opts = appendOption(opts, s.Params, rector.WithParams)
	opts = appendOption(opts, s.Returns, rector.WithReturns)
	opts = appendOption(opts, s.Properties, rector.WithProperties)
	opts = appendOption(opts, s.ParamEligibility, rector.WithParamEligibility)
	opts = appendOption(opts, s.ReturnEligibility, rector.WithReturnEligibility)
	opts = appendOption(opts, s.MultiProperty, rector.WithMultiProperty)

	return opts
}

// appendOption appends a non-nil setting to a [rector.Option] list.
func appendOption[T any](opts rector.Options, value *T, constructor func(T) rector.Option) rector.Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
