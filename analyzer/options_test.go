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

package analyzer_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "fillmore-labs.com/hoistguard/analyzer"
	"fillmore-labs.com/hoistguard/analyzer/level"
)

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithFix(false),
		nil,
		Options{WithGenerated(true), WithSeverity(level.SeverityWarn)},
		WithHooks("useEffect"),
	}

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.LogAttrs(t.Context(), slog.LevelInfo, "configured", opts.LogAttr())

	const want = `options.fix=false options.nil=<nil> options.generated=true options.severity=warn options.hooks=[useEffect]`
	if got := buf.String(); !strings.Contains(got, want) {
		t.Errorf("Expected log line to contain %q, got %q", want, got)
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := readFixture(t, "identifier")
	run(t, New(WithLogger(logger)), f.filename, f.input)

	for _, want := range []string{"hook=useMemo", "object=user", "status=hoist"} {
		if got := buf.String(); !strings.Contains(got, want) {
			t.Errorf("Expected debug log to contain %q, got %q", want, got)
		}
	}
}
