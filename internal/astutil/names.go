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

package astutil

import (
	"iter"
	"slices"
)

// Names is an insertion-ordered set of identifier names.
//
// The zero value is an empty set ready to use.
type Names struct {
	order []string
	set   map[string]struct{}
}

// NewNames returns a set containing names.
func NewNames(names ...string) *Names {
	n := &Names{}
	for _, name := range names {
		n.Add(name)
	}

	return n
}

// Add inserts name and reports whether it was absent.
func (n *Names) Add(name string) bool {
	if n.Has(name) {
		return false
	}

	if n.set == nil {
		n.set = make(map[string]struct{})
	}

	n.set[name] = struct{}{}
	n.order = append(n.order, name)

	return true
}

// AddAll inserts all names of a sequence.
func (n *Names) AddAll(names iter.Seq[string]) {
	for name := range names {
		n.Add(name)
	}
}

// Has reports whether name is in the set.
func (n *Names) Has(name string) bool {
	if n == nil {
		return false
	}

	_, ok := n.set[name]

	return ok
}

// Len returns the number of names.
func (n *Names) Len() int {
	if n == nil {
		return 0
	}

	return len(n.order)
}

// All yields the names in insertion order.
func (n *Names) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if n == nil {
			return
		}

		for _, name := range n.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Slice returns a copy of the names in insertion order.
func (n *Names) Slice() []string {
	if n == nil {
		return nil
	}

	return slices.Clone(n.order)
}

// Equal reports whether both sets contain the same names, regardless of order.
func (n *Names) Equal(o *Names) bool {
	if n.Len() != o.Len() {
		return false
	}

	for name := range n.All() {
		if !o.Has(name) {
			return false
		}
	}

	return true
}
