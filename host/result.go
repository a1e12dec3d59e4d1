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

package host

// Result tells the host whether a node has to be printed again.
type Result bool

const (
	// Unchanged means the node was left as it was.
	Unchanged Result = false

	// Changed means the node was modified.
	Changed Result = true
)

// Or combines two results.
func (r Result) Or(o Result) Result { return r || o }

func (r Result) String() string {
	if r {
		return "changed"
	}

	return "unchanged"
}
