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

// Package level defines the rule severity setting.
package level

import (
	"fmt"
	"strings"
)

// Severity specifies how diagnostics of the rule are treated.
type Severity uint8

const (
	// SeverityError reports diagnostics as errors.
	SeverityError Severity = iota

	// SeverityWarn reports diagnostics as warnings.
	SeverityWarn

	// SeverityOff disables the rule.
	SeverityOff
)

// String implements [fmt.Stringer].
func (s Severity) String() string {
	text, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("Severity(%d)", s)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityError:
		return []byte("error"), nil

	case SeverityWarn:
		return []byte("warn"), nil

	case SeverityOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The numeric ESLint levels 0, 1 and 2 are accepted.
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "error", "2", "on", "true":
		*s = SeverityError

	case "warn", "warning", "1":
		*s = SeverityWarn

	case "off", "0", "false":
		*s = SeverityOff

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}

// Set implements pflag.Value.
func (s *Severity) Set(value string) error {
	return s.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.
func (*Severity) Type() string { return "severity" }
