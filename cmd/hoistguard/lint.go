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
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/hoistguard/analyzer"
)

// linter checks a set of files concurrently.
type linter struct {
	analyzer *analyzer.Analyzer
	logger   *slog.Logger
	jobs     int
	exclude  []string
}

// fileResult is the outcome of checking one file.
type fileResult struct {
	path   string
	result *analyzer.Result
	err    error
}

func (l linter) run(ctx context.Context, w io.Writer, paths []string, out output) error {
	if err := out.validate(); err != nil {
		return err
	}

	files, err := collectFiles(paths, l.exclude)
	if err != nil {
		return err
	}

	l.logger.LogAttrs(ctx, slog.LevelInfo, "checking files", slog.Int("files", len(files)), slog.Int("jobs", l.jobs))

	results, err := l.lint(ctx, files)
	if err != nil {
		return err
	}

	return out.write(w, results)
}

// lint checks files with at most l.jobs files in parallel.
// Failures of single files are recorded in their result.
func (l linter) lint(ctx context.Context, files []string) ([]fileResult, error) {
	results := make([]fileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(l.jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = l.lintFile(gctx, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (l linter) lintFile(ctx context.Context, path string) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	result, err := l.analyzer.Run(ctx, path, src)
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "can't check file", slog.String("file", path), slog.Any("error", err))

		return fileResult{path: path, err: err}
	}

	return fileResult{path: path, result: result}
}
