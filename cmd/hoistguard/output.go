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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"fillmore-labs.com/hoistguard/analyzer/level"
	"fillmore-labs.com/hoistguard/internal/report"
)

var (
	positionColor = color.New(color.Bold)
	errorColor    = color.New(color.FgRed)
	warnColor     = color.New(color.FgYellow)
)

// output writes the results in the requested mode.
type output struct {
	fix    bool
	diff   bool
	format string
}

func (o output) validate() error {
	switch o.format {
	case formatText, formatJSON:
		return nil

	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}
}

// finding is a diagnostic of a checked file.
type finding struct {
	File     string       `json:"file"`
	Line     int          `json:"line"`
	Column   int          `json:"column"`
	Severity string       `json:"severity"`
	Category string       `json:"category"`
	Message  string       `json:"message"`
	Data     *report.Data `json:"data,omitempty"`
	Status   string       `json:"status"`
	Fixable  bool         `json:"fixable"`

	sev level.Severity
}

// write applies or prints fixes, then prints the remaining diagnostics.
// It returns [errFindings] when error diagnostics remain.
func (o output) write(w io.Writer, results []fileResult) error {
	var (
		failed   error
		findings []finding
		errs     bool
	)

	for _, r := range results {
		if r.err != nil {
			failed = errors.Join(failed, fmt.Errorf("%s: %w", r.path, r.err))

			continue
		}

		diagnostics := r.result.Diagnostics

		switch {
		case o.fix:
			remaining, err := fixFile(r)
			if err != nil {
				failed = errors.Join(failed, err)

				continue
			}

			diagnostics = remaining

		case o.diff:
			if err := diffFile(w, r); err != nil {
				failed = errors.Join(failed, err)
			}
		}

		severity := r.result.Severity
		for _, d := range diagnostics {
			findings = append(findings, newFinding(r.path, severity, d))
		}

		if severity == level.SeverityError && len(diagnostics) > 0 {
			errs = true
		}
	}

	if !o.diff {
		if err := o.print(w, findings); err != nil {
			return err
		}
	}

	switch {
	case failed != nil:
		return failed

	case errs:
		return errFindings

	default:
		return nil
	}
}

func newFinding(path string, severity level.Severity, d report.Diagnostic) finding {
	return finding{
		File:     path,
		Line:     d.Line,
		Column:   d.Column,
		Severity: severity.String(),
		Category: d.Category,
		Message:  d.Message,
		Data:     d.Data,
		Status:   d.Status.String(),
		Fixable:  len(d.Fix) > 0,
		sev:      severity,
	}
}

func (o output) print(w io.Writer, findings []finding) error {
	if o.format == formatJSON {
		if findings == nil {
			findings = []finding{}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(findings)
	}

	for _, f := range findings {
		c := errorColor
		if f.sev == level.SeverityWarn {
			c = warnColor
		}

		if _, err := fmt.Fprintf(w, "%s: %s %s\n",
			positionColor.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
			f.Message,
			c.Sprintf("(%s)", f.Category),
		); err != nil {
			return err
		}
	}

	return nil
}

// fixFile writes the fixed source of a file and returns the diagnostics left unfixed.
func fixFile(r fileResult) ([]report.Diagnostic, error) {
	fixed, remaining, err := r.result.Apply()
	if err != nil {
		return nil, fmt.Errorf("%s: can't apply fixes: %w", r.path, err)
	}

	if bytes.Equal(fixed, r.result.Source) {
		return remaining, nil
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(r.path, fixed, info.Mode().Perm()); err != nil {
		return nil, err
	}

	return remaining, nil
}

// diffFile prints the suggested fixes of a file as a unified diff.
func diffFile(w io.Writer, r fileResult) error {
	fixed, _, err := r.result.Apply()
	if err != nil {
		return fmt.Errorf("%s: can't apply fixes: %w", r.path, err)
	}

	if bytes.Equal(fixed, r.result.Source) {
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(r.result.Source)),
		B:        difflib.SplitLines(string(fixed)),
		FromFile: r.path,
		ToFile:   r.path,
		Context:  3,
	}

	return difflib.WriteUnifiedDiff(w, diff)
}
