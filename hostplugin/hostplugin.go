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

package hostplugin

import (
	"github.com/golangci/plugin-module-register/register"

	"fillmore-labs.com/strictdoc/rector"
)

// New creates a new [Plugin] instance from raw host settings, see [Settings].
func New(rawSettings any) (*Plugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return &Plugin{settings: settings}, nil
}

// Plugin holds decoded [Settings].
type Plugin struct {
	settings Settings
}

// Settings returns the decoded settings.
func (p *Plugin) Settings() Settings {
	return p.settings
}

// Build creates a [rector.Rector] for the host's collaborators.
// Additional options are applied after the settings and override them.
func (p *Plugin) Build(h rector.Host, opts ...rector.Option) *rector.Rector {
	return rector.New(h, p.settings.Options(), rector.Options(opts))
}
