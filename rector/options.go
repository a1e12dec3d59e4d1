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

// Option configures specific behavior of the rules built by [New].
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithParams is an [Option] to configure whether parameter types are added.
func WithParams(params bool) Option { return ruleOption{name: "params", rule: config.ParamRule, enabled: params} }

// WithReturns is an [Option] to configure whether return types are added.
func WithReturns(returns bool) Option {
	return ruleOption{name: "returns", rule: config.ReturnRule, enabled: returns}
}

// WithProperties is an [Option] to configure whether property types are added.
func WithProperties(properties bool) Option {
	return ruleOption{name: "properties", rule: config.PropertyRule, enabled: properties}
}

type ruleOption struct {
	name    string
	rule    config.RuleFlags
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	r.rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithParamEligibility is an [Option] to restrict parameter types depending on the class hierarchy.
func WithParamEligibility(eligibility level.Eligibility) Option {
	return paramEligibilityOption{eligibility: eligibility}
}

type paramEligibilityOption struct{ eligibility level.Eligibility }

func (o paramEligibilityOption) apply(r *runOptions) {
	r.paramEligibility = o.eligibility
}

func (o paramEligibilityOption) LogAttr() slog.Attr {
	return slog.Any("param-eligibility", o.eligibility)
}

// WithReturnEligibility is an [Option] to restrict return types depending on the class hierarchy.
func WithReturnEligibility(eligibility level.Eligibility) Option {
	return returnEligibilityOption{eligibility: eligibility}
}

type returnEligibilityOption struct{ eligibility level.Eligibility }

func (o returnEligibilityOption) apply(r *runOptions) {
	r.returnEligibility = o.eligibility
}

func (o returnEligibilityOption) LogAttr() slog.Attr {
	return slog.Any("return-eligibility", o.eligibility)
}

// WithMultiProperty is an [Option] to configure how statements declaring several properties are handled.
func WithMultiProperty(multiProperty level.MultiProperty) Option {
	return multiPropertyOption{multiProperty: multiProperty}
}

type multiPropertyOption struct{ multiProperty level.MultiProperty }

func (o multiPropertyOption) apply(r *runOptions) {
	r.multiProperty = o.multiProperty
}

func (o multiPropertyOption) LogAttr() slog.Attr {
	return slog.Any("multi-property", o.multiProperty)
}

// WithLogger is an [Option] to log skipped and changed declarations at debug level.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
