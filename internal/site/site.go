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

// Package site applies declared types to parameter, return and property declarations.
package site

import (
	"context"
	"errors"
	"log/slog"

	"fillmore-labs.com/strictdoc/declared"
	"fillmore-labs.com/strictdoc/internal/lower"
)

// ErrMultipleProperties is returned when a statement declaring several properties is rejected.
var ErrMultipleProperties = errors.New("multiple properties declared in one statement")

// discard is used when no logger is configured.
var discard = slog.New(slog.DiscardHandler)

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discard
	}

	return l
}

func logSkip(ctx context.Context, l *slog.Logger, site lower.Context, name string, reason SkipReason) {
	l.LogAttrs(ctx, slog.LevelDebug, "Skipping declaration",
		slog.String("site", site.String()),
		slog.String("name", name),
		slog.String("reason", reason.String()))
}

func logDeclared(ctx context.Context, l *slog.Logger, site lower.Context, name string, t declared.Type) {
	l.LogAttrs(ctx, slog.LevelDebug, "Adding declared type",
		slog.String("site", site.String()),
		slog.String("name", name),
		slog.String("type", t.String()))
}
