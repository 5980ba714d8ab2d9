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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"fillmore-labs.com/hoistguard/analyzer"
	"fillmore-labs.com/hoistguard/internal/config"
	"fillmore-labs.com/hoistguard/internal/target"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

// errFindings signals remaining error diagnostics.
var errFindings = errors.New("error diagnostics found")

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// cliFlags holds the values of the command line flags that are not configuration keys.
type cliFlags struct {
	config    string
	diff      bool
	format    string
	jobs      int
	logLevel  string
	logFormat string
}

// execute runs the command line and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, errFindings):
		return exitFindings

	default:
		fmt.Fprintf(stderr, "hoistguard: %v\n", err) // ignore error

		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	var f cliFlags

	template := analyzer.New()

	cmd := &cobra.Command{
		Use:   "hoistguard [flags] <path>...",
		Short: "Hoist destructuring out of React hook callbacks",
		Long: template.Doc + `

Configuration is read from .hoistguard.toml or .hoistguard.yaml in the current
directory and HOISTGUARD_* environment variables. Flags take precedence.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel, f.logFormat)
			if err != nil {
				return err
			}

			cfg, err := config.Load(".", f.config, cmd.Flags(), target.DefaultHooks)
			if err != nil {
				return err
			}

			opts, err := options(cfg)
			if err != nil {
				return err
			}

			opts = append(opts, analyzer.WithLogger(logger))
			logger.LogAttrs(cmd.Context(), slog.LevelDebug, "configuration", opts.LogAttr())

			l := linter{
				analyzer: analyzer.New(opts...),
				logger:   logger,
				jobs:     f.jobs,
				exclude:  cfg.Exclude,
			}

			return l.run(cmd.Context(), cmd.OutOrStdout(), args, output{fix: cfg.Fix, diff: f.diff, format: f.format})
		},
	}

	flags := cmd.Flags()
	template.RegisterFlags(flags)
	flags.Bool(config.KeyFix, false, "write suggested fixes to the source files")
	flags.StringSlice(config.KeyExclude, nil, "glob patterns of files and directories to skip")
	flags.StringVarP(&f.config, "config", "c", "", "configuration file")
	flags.BoolVar(&f.diff, "diff", false, "print suggested fixes as unified diffs instead of diagnostics")
	flags.StringVar(&f.format, "format", formatText, "output format (text, json)")
	flags.IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files checked in parallel")
	flags.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&f.logFormat, "log-format", formatText, "log format (text, json)")

	cmd.MarkFlagsMutuallyExclusive(config.KeyFix, "diff")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
