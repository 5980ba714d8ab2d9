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

package report

import (
	"fmt"
	"strings"

	"fillmore-labs.com/hoistguard/internal/edit"
	"fillmore-labs.com/hoistguard/internal/target"
	"fillmore-labs.com/hoistguard/internal/target/check"
)

// Category is the message identifier of hoisting diagnostics.
const Category = "hoistDestructuring"

// noDependencies replaces an empty field list in messages.
const noDependencies = "the fields you use"

// Data holds the message parameters of a hoisting diagnostic.
type Data struct {
	ObjectName   string `json:"objectName"`
	HookName     string `json:"hookName"`
	Dependencies string `json:"dependencies"`
}

// NewData creates the message parameters for the groups of a hook call.
func NewData(call target.HookCall, groups *target.Groups) Data {
	deps := noDependencies
	if names := groups.Dependencies(); names.Len() > 0 {
		deps = strings.Join(names.Slice(), ", ")
	}

	return Data{
		ObjectName:   groups.List[0].ObjectText,
		HookName:     call.Name,
		Dependencies: deps,
	}
}

const messageFormat = `What's wrong: "%[1]s" is destructured inside the %[2]s callback -> ` +
	"Why it matters: the deps array then tracks the whole object, so the hook can re-run for unrelated field changes and can hide stale closures -> " +
	"How to fix: hoist the destructuring before %[2]s (or memoize/guard the object) and depend on the specific fields: %[3]s."

// Message renders the diagnostic message.
func (d Data) Message() string {
	return fmt.Sprintf(messageFormat, d.ObjectName, d.HookName, d.Dependencies)
}

// Diagnostic is a finding in a source file.
type Diagnostic struct {
	Start, End   int
	Line, Column int
	Category     string
	Message      string

	// Data holds the message parameters of hoisting diagnostics.
	Data *Data

	// Status tells whether the fix was blocked and why.
	Status check.Status

	// Fix is the edit script of the suggested fix, empty when none is available.
	Fix edit.Script
}
