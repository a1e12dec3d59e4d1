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

	"fillmore-labs.com/strictdoc/host"
	"fillmore-labs.com/strictdoc/internal/eligibility"
	"fillmore-labs.com/strictdoc/internal/lower"
)

// Returns adds declared return types from "@return" tags.
type Returns struct {
	Tags   host.TagRemover
	Docs   host.DocBlockRenderer
	Guard  eligibility.Guard
	Logger *slog.Logger
}

// Apply processes the return value of a method.
func (s Returns) Apply(ctx context.Context, m host.Method) (host.Result, error) {
	defer trace.StartRegion(ctx, "ReturnSite").End()

	log := loggerOrDiscard(s.Logger)
	name := m.Name()

	if !s.Guard.Allows(m) {
		logSkip(ctx, log, lower.MethodReturn, name, SkipIneligible)

		return host.Unchanged, nil
	}

	if m.ReturnTyped() {
		logSkip(ctx, log, lower.MethodReturn, name, SkipTyped)

		return host.Unchanged, nil
	}

	doc := m.Doc()
	if doc == nil {
		logSkip(ctx, log, lower.MethodReturn, name, SkipUndocumented)

		return host.Unchanged, nil
	}

	docType, ok := doc.ReturnType()
	if !ok {
		logSkip(ctx, log, lower.MethodReturn, name, SkipUndocumented)

		return host.Unchanged, nil
	}

	t, ok := lower.Lower(docType, lower.MethodReturn)
	if !ok {
		logSkip(ctx, log, lower.MethodReturn, name, SkipDeclined)

		return host.Unchanged, nil
	}

	logDeclared(ctx, log, lower.MethodReturn, name, t)

	m.SetReturnType(t)

	if s.Tags != nil {
		s.Tags.RemoveReturnTagIfRedundant(m)
	}

	if s.Docs != nil {
		s.Docs.Refresh(m)
	}

	return host.Changed, nil
}
