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
	"iter"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/scope"
)

// Registry tracks the names introduced by hoisted declarations, per scope.
//
// It ensures a later hoist in the same scope does not bind a name an earlier
// hoist of the same pass already introduced.
//
// The Registry uses lazy initialization for its internal map, only allocating memory
// when the first name is reserved.
type Registry struct {
	reserved map[scope.ID]*astutil.Names
}

// NewRegistry creates a new Registry instance.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reserved reports whether name was introduced into the scope id by an earlier hoist.
func (r *Registry) Reserved(id scope.ID, name string) bool {
	if r == nil {
		return false
	}

	return r.reserved[id].Has(name)
}

// Reserve records names introduced into the scope id.
func (r *Registry) Reserve(id scope.ID, names iter.Seq[string]) {
	if r.reserved == nil {
		r.reserved = make(map[scope.ID]*astutil.Names)
	}

	s, ok := r.reserved[id]
	if !ok {
		s = &astutil.Names{}
		r.reserved[id] = s
	}

	s.AddAll(names)
}

// Names returns the names reserved in the scope id in reservation order.
func (r *Registry) Names(id scope.ID) []string {
	if r == nil {
		return nil
	}

	return r.reserved[id].Slice()
}
