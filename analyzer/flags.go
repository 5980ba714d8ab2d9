// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"github.com/spf13/pflag"

	"fillmore-labs.com/hoistguard/internal/config"
)

// Flag names registered by [Analyzer.RegisterFlags].
const (
	FlagGenerated = config.KeyGenerated
	FlagSeverity  = config.KeySeverity
	FlagHooks     = config.KeyHooks
)

// RegisterFlags binds the analyzer options to command line flag values.
// A nil flag set value defaults to the program's command line.
//
// Flags must be parsed before the first call to [Analyzer.Run].
func (a *Analyzer) RegisterFlags(flags *pflag.FlagSet) {
	if flags == nil {
		flags = pflag.CommandLine
	}

	r := a.options

	generated := newBehaviorValue(&r.behavior, config.IncludeGenerated)
	flags.VarPF(generated, FlagGenerated, "", "check generated files").NoOptDefVal = "true"
	flags.Var(&r.severity, FlagSeverity, "rule severity (off, warn, error)")
	flags.StringSliceVar(&r.hooks, FlagHooks, r.hooks, "hook names whose callbacks are checked")
}

func newBehaviorValue(flags *config.BitMask[config.Behavior], value config.Behavior) boolValue[config.Behavior, *config.BitMask[config.Behavior]] {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{flags: flags, value: value}
}
