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

package site

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/strictdoc/doctype"
	"fillmore-labs.com/strictdoc/host"
	"fillmore-labs.com/strictdoc/internal/eligibility"
	"fillmore-labs.com/strictdoc/internal/lower"
)

// Params adds declared parameter types from "@param" tags.
type Params struct {
	Tags   host.TagRemover
	Nodes  host.NodeInvalidator
	Guard  eligibility.Guard
	Logger *slog.Logger
}

// Apply processes the parameters of a method in declaration order.
func (s Params) Apply(ctx context.Context, m host.Method) (host.Result, error) {
	defer trace.StartRegion(ctx, "ParamSite").End()

	log := loggerOrDiscard(s.Logger)

	if !s.Guard.Allows(m) {
		logSkip(ctx, log, lower.MethodParam, m.Name(), SkipIneligible)

		return host.Unchanged, nil
	}

	doc := m.Doc()

	var typed []string

	for _, p := range m.Params() {
		name := p.Name()

		if p.Typed() {
			logSkip(ctx, log, lower.MethodParam, name, SkipTyped)

			continue
		}

		docType, ok := paramType(doc, name)
		if !ok {
			logSkip(ctx, log, lower.MethodParam, name, SkipUndocumented)

			continue
		}

		t, ok := lower.Lower(docType, lower.MethodParam)
		if !ok {
			logSkip(ctx, log, lower.MethodParam, name, SkipDeclined)

			continue
		}

		logDeclared(ctx, log, lower.MethodParam, name, t)

		p.SetType(t)
		typed = append(typed, name)

		// The printed form of promoted parameters changes with their modifiers
		if p.Promoted() && s.Nodes != nil {
			s.Nodes.InvalidateOriginal(p)
		}
	}

	result := host.Result(len(typed) > 0)

	if s.Tags != nil {
		for _, name := range typed {
			if s.Tags.RemoveParamTagIfRedundant(m, name) {
				result = host.Changed
			}
		}
	}

	return result, nil
}

// paramType tolerates hosts returning no documentation at all.
func paramType(doc host.DocInfo, name string) (doctype.Type, bool) {
	if doc == nil {
		return nil, false
	}

	return doc.ParamType(name)
}
