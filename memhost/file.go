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

package memhost

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/strictdoc/host"
)

// Load decodes a [File] from YAML. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("memhost: can't decode file: %w", err)
	}

	f.link()

	return &f, nil
}

// Encode writes the file as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("memhost: can't encode file: %w", err)
	}

	return enc.Close()
}

// Refactorer applies rules to single declarations.
type Refactorer interface {
	RefactorMethod(ctx context.Context, m host.Method) (host.Result, error)
	RefactorProperty(ctx context.Context, p host.Property) (host.Result, error)
}

// Refactor applies the rules to every method and property statement in declaration order,
// returning the number of changed declarations. Errors don't stop the walk.
func (f *File) Refactor(ctx context.Context, r Refactorer) (int, error) {
	var (
		changed int
		errs    []error
	)

	for _, c := range f.Classes {
		for _, p := range c.Properties {
			res, err := r.RefactorProperty(ctx, p)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s::$%v: %w", c.FullyQualifiedName(), p.Idents, err))
			}

			if res == host.Changed {
				changed++
			}
		}

		for _, m := range c.Methods {
			res, err := r.RefactorMethod(ctx, m)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s::%s(): %w", c.FullyQualifiedName(), m.Ident, err))
			}

			if res == host.Changed {
				changed++
			}
		}
	}

	return changed, errors.Join(errs...)
}
