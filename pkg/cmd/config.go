// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"strings"

	"github.com/consensys/go-ippcode/pkg/ippcode"
	log "github.com/sirupsen/logrus"
)

// ENV_LOG_LEVEL names the environment variable determining logging verbosity.
const ENV_LOG_LEVEL = "IPPCODE_LOG_LEVEL"

// ENV_COLOUR names the environment variable determining whether diagnostics
// are highlighted.
const ENV_COLOUR = "IPPCODE_COLOR"

// ColourMode determines when diagnostics are highlighted.
type ColourMode uint

// COLOUR_AUTO highlights diagnostics only when written to a terminal.
const COLOUR_AUTO ColourMode = 0

// COLOUR_ALWAYS always highlights diagnostics.
const COLOUR_ALWAYS ColourMode = 1

// COLOUR_NEVER never highlights diagnostics.
const COLOUR_NEVER ColourMode = 2

// Config encapsulates the settings of a single run.  Since the command line
// admits nothing beyond "--help", settings are taken from the environment.
type Config struct {
	// Logging verbosity
	Level log.Level
	// Diagnostic highlighting
	Colour ColourMode
	// Dialect being translated
	Dialect ippcode.Config
}

// LoadConfig reads the configuration from a given environment, where unset
// variables take their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{log.WarnLevel, COLOUR_AUTO, ippcode.DefaultConfig()}
	//
	if value := getenv(ENV_LOG_LEVEL); value != "" {
		level, err := log.ParseLevel(value)
		if err != nil {
			return config, fmt.Errorf("invalid %s: %w", ENV_LOG_LEVEL, err)
		}
		//
		config.Level = level
	}
	//
	switch value := strings.ToLower(getenv(ENV_COLOUR)); value {
	case "", "auto":
		config.Colour = COLOUR_AUTO
	case "always":
		config.Colour = COLOUR_ALWAYS
	case "never":
		config.Colour = COLOUR_NEVER
	default:
		return config, fmt.Errorf("invalid %s \"%s\" (expected auto, always or never)", ENV_COLOUR, value)
	}
	//
	return config, nil
}
