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

// Eligibility restricts which methods may receive declared types, depending on the class hierarchy.
type Eligibility uint8

const (
	// EligibilityAll applies to every method.
	EligibilityAll Eligibility = iota

	// EligibilityInterfaces only applies to methods declared in interfaces.
	// Methods of resolved concrete classes are skipped.
	EligibilityInterfaces

	// EligibilityNoOverrides skips methods that a parent class or an implemented interface also declares,
	// so signatures within a hierarchy stay compatible.
	EligibilityNoOverrides
)

// MarshalText implements [encoding.TextMarshaler].
func (o Eligibility) MarshalText() ([]byte, error) {
	switch o {
	case EligibilityAll:
		return []byte("all"), nil

	case EligibilityInterfaces:
		return []byte("interfaces"), nil

	case EligibilityNoOverrides:
		return []byte("no-overrides"), nil

	default:
		return nil, fmt.Errorf("unknown eligibility level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Eligibility) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "all":
		*o = EligibilityAll

	case "interfaces", "interface":
		*o = EligibilityInterfaces

	case "no-overrides":
		*o = EligibilityNoOverrides

	default:
		return fmt.Errorf("unknown eligibility level %q", string(text))
	}

	return nil
}
