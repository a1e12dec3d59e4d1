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
	"fmt"
	"log/slog"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/strictdoc/host"
	"fillmore-labs.com/strictdoc/internal/lower"
	"fillmore-labs.com/strictdoc/rector/level"
)

// Properties adds declared property types from "@var" tags.
type Properties struct {
	Tags          host.TagRemover
	MultiProperty level.MultiProperty
	Logger        *slog.Logger
}

// Apply processes a property statement.
func (s Properties) Apply(ctx context.Context, p host.Property) (host.Result, error) {
	defer trace.StartRegion(ctx, "PropertySite").End()

	log := loggerOrDiscard(s.Logger)
	names := p.Names()
	name := strings.Join(names, ", ")

	if len(names) > 1 {
		logSkip(ctx, log, lower.Property, name, SkipMultiple)

		if s.MultiProperty == level.MultiPropertyReject {
			return host.Unchanged, fmt.Errorf("%w: $%s", ErrMultipleProperties, strings.Join(names, ", $"))
		}

		return host.Unchanged, nil
	}

	if p.Typed() {
		logSkip(ctx, log, lower.Property, name, SkipTyped)

		return host.Unchanged, nil
	}

	doc := p.Doc()
	if doc == nil {
		logSkip(ctx, log, lower.Property, name, SkipUndocumented)

		return host.Unchanged, nil
	}

	docType, ok := doc.VarType()
	if !ok {
		logSkip(ctx, log, lower.Property, name, SkipUndocumented)

		return host.Unchanged, nil
	}

	t, ok := lower.Lower(docType, lower.Property)
	if !ok {
		logSkip(ctx, log, lower.Property, name, SkipDeclined)

		return host.Unchanged, nil
	}

	logDeclared(ctx, log, lower.Property, name, t)

	p.SetType(t)

	if s.Tags != nil {
		s.Tags.RemoveVarTagIfRedundant(p)
	}

	return host.Changed, nil
}
