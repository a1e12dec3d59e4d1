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
	"log/slog"

	"fillmore-labs.com/strictdoc/internal/config"
	"fillmore-labs.com/strictdoc/rector/level"
)

type runOptions struct {
	// rules represents the rules to be enabled.
	rules config.Rules

	// paramEligibility restricts the methods receiving parameter types.
	paramEligibility level.Eligibility

	// returnEligibility restricts the methods receiving return types.
	returnEligibility level.Eligibility

	// multiProperty decides on statements declaring several properties.
	multiProperty level.MultiProperty

	logger *slog.Logger
}

func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

func defaultRunOptions() *runOptions {
	return &runOptions{
		rules:             config.DefaultRules(),
		paramEligibility:  level.EligibilityAll,
		returnEligibility: level.EligibilityAll,
		multiProperty:     level.MultiPropertySkip,
	}
}
