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
	"context"
	"log/slog"

	"fillmore-labs.com/strictdoc/host"
	"fillmore-labs.com/strictdoc/internal/config"
	"fillmore-labs.com/strictdoc/internal/eligibility"
	"fillmore-labs.com/strictdoc/internal/site"
)

// ErrMultipleProperties is returned for statements declaring several properties
// when [level.MultiPropertyReject] is configured.
var ErrMultipleProperties = site.ErrMultipleProperties

// Host bundles the collaborators a refactoring host provides. Nil collaborators are not called.
type Host struct {
	// Tags removes redundant documentation tags.
	Tags host.TagRemover

	// Docs refreshes printed documentation after return tags were removed.
	Docs host.DocBlockRenderer

	// Nodes invalidates cached source of promoted constructor parameters.
	Nodes host.NodeInvalidator

	// Classes resolves owning classes for eligibility restrictions.
	Classes host.ClassResolver
}

// Rule describes a rule for the host's rule registry.
type Rule interface {
	Name() string
	Description() string
}

// ParamRule adds declared parameter types from "@param" tags.
type ParamRule struct{ site site.Params }

// Name implements [Rule].
func (*ParamRule) Name() string { return "param-type-from-doc" }

// Description implements [Rule].
func (*ParamRule) Description() string { return "Add declared types to method parameters from documentation" }

// Apply adds declared types to the parameters of a method.
func (r *ParamRule) Apply(ctx context.Context, m host.Method) (host.Result, error) {
	return r.site.Apply(ctx, m)
}

// ReturnRule adds declared return types from "@return" tags.
type ReturnRule struct{ site site.Returns }

// Name implements [Rule].
func (*ReturnRule) Name() string { return "return-type-from-doc" }

// Description implements [Rule].
func (*ReturnRule) Description() string { return "Add declared return types to methods from documentation" }

// Apply adds a declared return type to a method.
func (r *ReturnRule) Apply(ctx context.Context, m host.Method) (host.Result, error) {
	return r.site.Apply(ctx, m)
}

// PropertyRule adds declared property types from "@var" tags.
type PropertyRule struct{ site site.Properties }

// Name implements [Rule].
func (*PropertyRule) Name() string { return "property-type-from-doc" }

// Description implements [Rule].
func (*PropertyRule) Description() string { return "Add declared types to properties from documentation" }

// Apply adds a declared type to a property statement.
func (r *PropertyRule) Apply(ctx context.Context, p host.Property) (host.Result, error) {
	return r.site.Apply(ctx, p)
}

// NewParamRule creates a [ParamRule], ignoring whether it is enabled in the options.
func NewParamRule(h Host, opts ...Option) *ParamRule {
	return makeRunOptions(opts).paramRule(h)
}

// NewReturnRule creates a [ReturnRule], ignoring whether it is enabled in the options.
func NewReturnRule(h Host, opts ...Option) *ReturnRule {
	return makeRunOptions(opts).returnRule(h)
}

// NewPropertyRule creates a [PropertyRule], ignoring whether it is enabled in the options.
func NewPropertyRule(h Host, opts ...Option) *PropertyRule {
	return makeRunOptions(opts).propertyRule(h)
}

func (r *runOptions) paramRule(h Host) *ParamRule {
	return &ParamRule{site.Params{
		Tags:   h.Tags,
		Nodes:  h.Nodes,
		Guard:  eligibility.Guard{Level: r.paramEligibility, Classes: h.Classes},
		Logger: r.logger,
	}}
}

func (r *runOptions) returnRule(h Host) *ReturnRule {
	return &ReturnRule{site.Returns{
		Tags:   h.Tags,
		Docs:   h.Docs,
		Guard:  eligibility.Guard{Level: r.returnEligibility, Classes: h.Classes},
		Logger: r.logger,
	}}
}

func (r *runOptions) propertyRule(h Host) *PropertyRule {
	return &PropertyRule{site.Properties{
		Tags:          h.Tags,
		MultiProperty: r.multiProperty,
		Logger:        r.logger,
	}}
}

// Rector applies the enabled rules to method and property declarations.
type Rector struct {
	params     *ParamRule
	returns    *ReturnRule
	properties *PropertyRule
}

// New creates a [Rector] with all rules enabled in the options, which is every rule by default.
func New(h Host, opts ...Option) *Rector {
	r := makeRunOptions(opts)

	if r.rules.Empty() && r.logger != nil {
		r.logger.LogAttrs(context.Background(), slog.LevelWarn, "No rules enabled", Options(opts).LogAttr())
	}

	var rc Rector

	if r.rules.Enabled(config.ParamRule) {
		rc.params = r.paramRule(h)
	}

	if r.rules.Enabled(config.ReturnRule) {
		rc.returns = r.returnRule(h)
	}

	if r.rules.Enabled(config.PropertyRule) {
		rc.properties = r.propertyRule(h)
	}

	return &rc
}

// Rules returns the enabled rules.
func (rc *Rector) Rules() []Rule {
	var rules []Rule

	if rc.params != nil {
		rules = append(rules, rc.params)
	}

	if rc.returns != nil {
		rules = append(rules, rc.returns)
	}

	if rc.properties != nil {
		rules = append(rules, rc.properties)
	}

	return rules
}

// RefactorMethod applies the parameter rule, then the return rule.
func (rc *Rector) RefactorMethod(ctx context.Context, m host.Method) (host.Result, error) {
	result := host.Unchanged

	if rc.params != nil {
		res, err := rc.params.Apply(ctx, m)
		if err != nil {
			return result, err
		}

		result = result.Or(res)
	}

	if rc.returns != nil {
		res, err := rc.returns.Apply(ctx, m)
		if err != nil {
			return result, err
		}

		result = result.Or(res)
	}

	return result, nil
}

// RefactorProperty applies the property rule.
func (rc *Rector) RefactorProperty(ctx context.Context, p host.Property) (host.Result, error) {
	if rc.properties == nil {
		return host.Unchanged, nil
	}

	return rc.properties.Apply(ctx, p)
}
