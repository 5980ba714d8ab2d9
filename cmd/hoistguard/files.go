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
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"fillmore-labs.com/hoistguard/internal/syntax"
)

// skipDirs are never searched.
var skipDirs = []string{"node_modules", ".git"}

// collectFiles expands the command line paths into the list of source files to check.
// Files named on the command line are always included.
func collectFiles(paths, exclude []string) ([]string, error) {
	var files []string

	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(root)

			continue
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if p != root && (slices.Contains(skipDirs, d.Name()) || excluded(exclude, p)) {
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := syntax.LanguageFromExtension(p); ok && !excluded(exclude, p) {
				add(p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't walk %s: %w", root, err)
		}
	}

	return files, nil
}

// excluded reports whether the path or its base name matches one of the glob patterns.
func excluded(patterns []string, p string) bool {
	slashed := filepath.ToSlash(p)
	base := path.Base(slashed)

	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, slashed); ok {
			return true
		}

		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}

	return false
}
