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

package target

import (
	"cmp"
	"slices"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/syntax"
	"fillmore-labs.com/hoistguard/internal/usage"
)

// BuildGroups merges candidates destructuring the same dependency entry.
//
// Properties rendering to the same text are kept once. Groups, properties and
// bound names are kept in first-seen order.
func BuildGroups(tree *syntax.Tree, candidates []Candidate) *Groups {
	groups := &Groups{byKey: make(map[string]*Group)}

	for _, c := range candidates {
		group, ok := groups.byKey[c.DepKey]
		if !ok {
			group = &Group{
				Key:        c.DepKey,
				ObjectText: tree.Text(c.Init),
				Base:       c.Base,
				Names:      &astutil.Names{},
				byText:     make(map[string]*Property),
			}
			groups.byKey[c.DepKey] = group
			groups.List = append(groups.List, group)
		}

		group.add(tree, c)
	}

	return groups
}

func (g *Group) add(tree *syntax.Tree, c Candidate) {
	for _, p := range c.Pattern.Children() {
		text := RenderProperty(tree, p)
		if _, ok := g.byText[text]; ok {
			continue
		}

		prop := &Property{
			Key:        PropertyKey(tree, p),
			Text:       text,
			Order:      p.Start(),
			BoundNames: usage.BoundNames(tree, p),
			References: usage.ReferencedNames(tree, p),
		}
		g.byText[text] = prop
		g.Properties = append(g.Properties, prop)
	}

	g.Names.AddAll(usage.BoundNames(tree, c.Pattern).All())
	g.Decls = append(g.Decls, c.Decl)
	g.Inits = append(g.Inits, c.Init)
}

// Pattern renders the merged object pattern of the group's properties.
func (g *Group) Pattern() string {
	if len(g.Properties) == 0 {
		return "{}"
	}

	n := 4
	for _, p := range g.Properties {
		n += len(p.Text) + 2
	}

	b := make([]byte, 0, n)
	b = append(b, "{ "...)

	for i, p := range g.Sorted() {
		if i > 0 {
			b = append(b, ", "...)
		}

		b = append(b, p.Text...)
	}

	b = append(b, " }"...)

	return string(b)
}

// Sorted returns the properties ordered by their first occurrence in the source.
func (g *Group) Sorted() []*Property {
	return slices.SortedStableFunc(slices.Values(g.Properties), func(a, b *Property) int {
		return cmp.Compare(a.Order, b.Order)
	})
}
