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

/*
Package hostplugin decodes rule settings handed over by a refactoring host.

Hosts pass their configuration as a generic value, usually decoded from YAML or JSON:

	params: true
	returns: true
	properties: false
	param-eligibility: no-overrides
	return-eligibility: interfaces
	multi-property: reject

Unset keys keep the defaults of [rector.New]. [New] decodes the settings and
[Plugin.Build] creates a [rector.Rector] for the host's collaborators.
*/
package hostplugin
