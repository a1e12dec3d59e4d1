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

package level

import (
	"fmt"
	"strings"
)

// MultiProperty decides how a statement declaring several properties at once is handled.
// A single "@var" tag can't be distributed over them.
type MultiProperty uint8

const (
	// MultiPropertySkip leaves the statement unchanged.
	MultiPropertySkip MultiProperty = iota

	// MultiPropertyReject leaves the statement unchanged and reports an error.
	MultiPropertyReject
)

// MarshalText implements [encoding.TextMarshaler].
func (o MultiProperty) MarshalText() ([]byte, error) {
	switch o {
	case MultiPropertySkip:
		return []byte("skip"), nil

	case MultiPropertyReject:
		return []byte("reject"), nil

	default:
		return nil, fmt.Errorf("unknown multi property level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *MultiProperty) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "skip":
		*o = MultiPropertySkip

	case "reject", "error":
		*o = MultiPropertyReject

	default:
		return fmt.Errorf("unknown multi property level %q", string(text))
	}

	return nil
}
