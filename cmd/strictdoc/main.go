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

// Command strictdoc adds declared types from documentation to YAML-described class declarations.
//
// Usage:
//
//	strictdoc [flags] file.yaml...
//
// The refactored declarations are written to standard output, or back to the files with -w.
// Settings from a -config file are applied first, command line flags override them.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/strictdoc/hostplugin"
	"fillmore-labs.com/strictdoc/memhost"
	"fillmore-labs.com/strictdoc/rector"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

const usage = "usage: strictdoc [flags] file.yaml..."

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("strictdoc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	write := fs.Bool("w", false, "write result to source files instead of standard output")
	verbose := fs.Bool("v", false, "log skipped and changed declarations")
	config := fs.String("config", "", "YAML settings `file`")
	flags := rector.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()

		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	plugin, err := loadPlugin(*config)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't load settings", slog.String("config", *config), slog.Any("error", err))

		return 1
	}

	opts := rector.Options{flags, rector.WithLogger(logger)}
	logger.LogAttrs(ctx, slog.LevelDebug, "Options", opts.LogAttr(), slog.Any("settings", plugin.Settings().Options()))

	h := memhost.NewHost()
	rc := plugin.Build(rector.Host{Tags: h, Docs: h, Nodes: h, Classes: h}, opts)

	status := 0

	for _, name := range fs.Args() {
		if err := refactorFile(ctx, rc, name, *write, stdout, logger); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "Refactoring failed", slog.String("file", name), slog.Any("error", err))

			status = 1
		}
	}

	return status
}

// loadPlugin decodes a settings file, an empty name gives the defaults.
func loadPlugin(name string) (*hostplugin.Plugin, error) {
	var raw map[string]any

	if name != "" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("can't parse %s: %w", name, err)
		}
	}

	return hostplugin.New(raw)
}

func refactorFile(ctx context.Context, rc *rector.Rector, name string, write bool, stdout io.Writer, logger *slog.Logger) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	f, err := memhost.Load(bytes.NewReader(data))
	if err != nil {
		return err
	}

	changed, rerr := f.Refactor(ctx, rc)

	logger.LogAttrs(ctx, slog.LevelDebug, "Refactored", slog.String("file", name), slog.Int("changed", changed))

	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return err
	}

	switch {
	case !write:
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return err
		}

	case changed > 0:
		info, err := os.Stat(name)
		if err != nil {
			return err
		}

		if err := os.WriteFile(name, buf.Bytes(), info.Mode().Perm()); err != nil {
			return err
		}
	}

	return rerr
}
