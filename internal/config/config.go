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

// Package config holds the behavior flags of the analyzer and the file configuration schema.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Behavior represents behavior flags of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// Fix specifies whether suggested fixes are computed.
	Fix
)

// DefaultBehavior returns the default behavior flags.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(Fix)
}

// Configuration file and environment settings.
const (
	FileName  = ".hoistguard"
	EnvPrefix = "HOISTGUARD"
)

// Configuration keys, shared with the command line flags.
const (
	KeySeverity  = "severity"
	KeyFix       = "fix"
	KeyGenerated = "generated"
	KeyHooks     = "hooks"
	KeyExclude   = "exclude"
)

// File is the schema of .hoistguard.toml and .hoistguard.yaml.
type File struct {
	Severity  string   `mapstructure:"severity"`
	Fix       bool     `mapstructure:"fix"`
	Generated bool     `mapstructure:"generated"`
	Hooks     []string `mapstructure:"hooks"`
	Exclude   []string `mapstructure:"exclude"`
}

// Behavior returns the behavior flags of the configuration.
func (f File) Behavior() BitMask[Behavior] {
	var b BitMask[Behavior]
	b.Set(Fix, f.Fix)
	b.Set(IncludeGenerated, f.Generated)

	return b
}

// Load reads the configuration file from dir, or the file at path when it is not empty,
// overlaid with HOISTGUARD_* environment variables and the changed flags of fs.
// A missing configuration file in dir is not an error.
func Load(dir, path string, fs *pflag.FlagSet, hooks []string) (File, error) {
	v := viper.New()

	v.SetDefault(KeySeverity, "error")
	v.SetDefault(KeyHooks, hooks)
	v.SetDefault(KeyExclude, []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return File{}, fmt.Errorf("can't bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return File{}, fmt.Errorf("can't read configuration: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("can't decode configuration %s: %w", v.ConfigFileUsed(), err)
	}

	return f, nil
}
