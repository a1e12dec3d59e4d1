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

//go:generate go tool stringer -type SkipReason -linecomment

// SkipReason tells why a declaration site was left unchanged.
type SkipReason uint8

const (
	// SkipTyped indicates the site already has a declared type.
	SkipTyped SkipReason = iota // typed

	// SkipUndocumented indicates there is no documentation tag for the site.
	SkipUndocumented // undocumented

	// SkipDeclined indicates the documentation type has no safe declared equivalent.
	SkipDeclined // declined

	// SkipIneligible indicates the method is excluded by its class hierarchy.
	SkipIneligible // ineligible

	// SkipMultiple indicates a statement declaring more than one property.
	SkipMultiple // multiple
)
