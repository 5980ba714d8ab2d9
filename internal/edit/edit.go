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

// Package edit applies byte-range text edits to source buffers.
package edit

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOverlap is returned when two edits of a script overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrOutOfRange is returned when an edit lies outside the source buffer.
	ErrOutOfRange = errors.New("edit out of range")
)

// Edit replaces the byte range [Start, End) with Text.
// Start == End denotes an insertion, an empty Text a deletion.
type Edit struct {
	Start, End int
	Text       string
}

// Insert creates an insertion at offset pos.
func Insert(pos int, text string) Edit { return Edit{Start: pos, End: pos, Text: text} }

// Delete creates a deletion of [start, end).
func Delete(start, end int) Edit { return Edit{Start: start, End: end} }

// Replace creates a replacement of [start, end) with text.
func Replace(start, end int, text string) Edit { return Edit{Start: start, End: end, Text: text} }

func (e Edit) String() string { return fmt.Sprintf("[%d,%d)%q", e.Start, e.End, e.Text) }

// Script is a list of edits applied together.
type Script []Edit

// Sort orders the edits by range, keeping insertions at the same offset in their original order.
func (s Script) Sort() {
	slices.SortStableFunc(s, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
}

// Validate checks that the sorted script lies within a buffer of size bytes and that
// no two edits overlap.
func (s Script) Validate(size int) error {
	end := 0

	for i, e := range s {
		if e.Start < 0 || e.End < e.Start || e.End > size {
			return fmt.Errorf("%w: %v in buffer of %d bytes", ErrOutOfRange, e, size)
		}

		if i > 0 && e.Start < end {
			return fmt.Errorf("%w: %v and %v", ErrOverlap, s[i-1], e)
		}

		end = e.End
	}

	return nil
}

// Overlaps reports whether an edit of s overlaps an edit of o.
// Insertions at the same offset as a boundary of another edit do not overlap.
func (s Script) Overlaps(o Script) bool {
	for _, a := range s {
		for _, b := range o {
			if overlap(a, b) {
				return true
			}
		}
	}

	return false
}

func overlap(a, b Edit) bool {
	if a.Start == a.End && b.Start == b.End {
		return a.Start == b.Start
	}

	return a.Start < b.End && b.Start < a.End
}

// Apply returns a copy of src with the script applied.
// The script is sorted and validated first, src is never modified.
func Apply(src []byte, s Script) ([]byte, error) {
	sorted := slices.Clone(s)
	sorted.Sort()

	if err := sorted.Validate(len(src)); err != nil {
		return nil, err
	}

	size := len(src)
	for _, e := range sorted {
		size += len(e.Text) - (e.End - e.Start)
	}

	out := make([]byte, 0, size)
	pos := 0

	for _, e := range sorted {
		out = append(out, src[pos:e.Start]...)
		out = append(out, e.Text...)
		pos = e.End
	}

	return append(out, src[pos:]...), nil
}

// Merge combines scripts in order, dropping every script that overlaps one accepted earlier.
// It returns the combined script and the indices of the dropped scripts.
func Merge(scripts ...Script) (merged Script, dropped []int) {
	for i, s := range scripts {
		if merged.Overlaps(s) {
			dropped = append(dropped, i)

			continue
		}

		merged = append(merged, s...)
	}

	merged.Sort()

	return merged, dropped
}
