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
	"log/slog"

	"fillmore-labs.com/strictdoc/internal/config"
)

// RegisterFlags binds command line flags for the rule options.
// A nil flag set value defaults to the program's command line.
//
// The returned [Option] applies only flags that were set, so it can override settings from other sources.
func RegisterFlags(flags *flag.FlagSet) Option {
	if flags == nil {
		flags = flag.CommandLine
	}

	o := &flagOption{flags: flags, values: defaultRunOptions()}
	v := o.values

	flags.Var(newRuleValue(&v.rules, config.ParamRule), "params", "add declared parameter types")
	flags.Var(newRuleValue(&v.rules, config.ReturnRule), "returns", "add declared return types")
	flags.Var(newRuleValue(&v.rules, config.PropertyRule), "properties", "add declared property types")
	flags.TextVar(&v.paramEligibility, "param-eligibility", v.paramEligibility,
		"methods receiving parameter types: all, interfaces or no-overrides")
	flags.TextVar(&v.returnEligibility, "return-eligibility", v.returnEligibility,
		"methods receiving return types: all, interfaces or no-overrides")
	flags.TextVar(&v.multiProperty, "multi-property", v.multiProperty,
		"statements declaring several properties: skip or reject")

	return o
}

type flagOption struct {
	flags  *flag.FlagSet
	values *runOptions
}

func (o *flagOption) apply(r *runOptions) {
	v := o.values

	o.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "params":
			r.rules.Set(config.ParamRule, v.rules.Enabled(config.ParamRule))

		case "returns":
			r.rules.Set(config.ReturnRule, v.rules.Enabled(config.ReturnRule))

		case "properties":
			r.rules.Set(config.PropertyRule, v.rules.Enabled(config.PropertyRule))

		case "param-eligibility":
			r.paramEligibility = v.paramEligibility

		case "return-eligibility":
			r.returnEligibility = v.returnEligibility

		case "multi-property":
			r.multiProperty = v.multiProperty
		}
	})
}

func (o *flagOption) LogAttr() slog.Attr {
	var as []slog.Attr

	o.flags.Visit(func(f *flag.Flag) {
		as = append(as, slog.String(f.Name, f.Value.String()))
	})

	return slog.Attr{Key: "flags", Value: slog.GroupValue(as...)}
}
