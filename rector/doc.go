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

// Package rector promotes documentation types to declared types.
//
// # Overview
//
// The rules read the "@param", "@return" and "@var" tags of method and property declarations
// and add the equivalent declared type where the declaration has none. Documentation types
// without a safe declared equivalent, like unions, nullable types or generic classes, are
// left alone. Tags that add nothing to the new declared type are removed.
//
// # Example
//
// Before:
//
//	class SomeClass
//	{
//	    /**
//	     * @param string $param
//	     * @param array{foo: string} $other
//	     */
//	    public function run($param, $other)
//	    {
//	    }
//	}
//
// After:
//
//	class SomeClass
//	{
//	    /**
//	     * @param array{foo: string} $other
//	     */
//	    public function run(string $param, array $other)
//	    {
//	    }
//	}
//
// # Hosts
//
// The rules don't parse or print source. A host passes declarations implementing the
// interfaces of package [fillmore-labs.com/strictdoc/host] and provides the collaborators in [Host].
package rector
