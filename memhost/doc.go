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

// Package memhost is an in-memory host for the rules, reading and writing declarations as YAML.
//
// A file describes the declarations of one namespace:
//
//	namespace: App\Service
//	uses:
//	  SomeClass: App\Other\SomeClass
//	classes:
//	  - name: Runner
//	    methods:
//	      - name: run
//	        doc:
//	          params:
//	            - {name: param, type: string}
//	            - {name: other, type: "array{foo: string}"}
//	        params:
//	          - name: param
//	          - name: other
//
// Documentation types are parsed with [doctype.Parse]. A tag is redundant when it has no description
// and its type is spelled exactly like the declared type, like "string" for string or "SomeClass" for
// \App\Other\SomeClass.
package memhost
