// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glossary

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

var ErrEntryNotFound = errors.New("entry not found")

// Glossary is a read-only collection of entries with derived lookup
// indexes. It is built once by Load and never mutated afterwards;
// replacing the data means building a new instance.
type Glossary struct {
	entries  map[string]*Entry
	byWord   map[string]*Entry
	children map[string][]string
}

// Load builds a complete glossary out of an ordered sequence of raw
// records. A record which fails validation aborts the load (no partial
// glossary is returned). A duplicate slug is resolved as
// last-write-wins, keeping the position of the first occurrence;
// the conflict is warn-logged.
//
// The children index preserves the order in which child records were
// supplied. This is deterministic only as long as the caller provides
// records in a deterministic order (which holds for JSON files parsed
// by ParseFile).
func Load(records []Record) (*Glossary, error) {
	g := &Glossary{
		entries:  make(map[string]*Entry, len(records)),
		byWord:   make(map[string]*Entry, len(records)),
		children: make(map[string][]string),
	}
	order := make([]string, 0, len(records))
	for _, rec := range records {
		entry, err := FromRecord(rec.Slug, rec.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to load glossary: %w", err)
		}
		if _, ok := g.entries[entry.Slug]; ok {
			log.Warn().
				Str("slug", entry.Slug).
				Msg("duplicate glossary record, the last one wins")

		} else {
			order = append(order, entry.Slug)
		}
		g.entries[entry.Slug] = entry
	}
	for _, slug := range order {
		entry := g.entries[slug]
		g.byWord[strings.ToLower(entry.Word)] = entry
		entry.Parent.Apply(func(parent string) {
			g.children[parent] = append(g.children[parent], slug)
		})
	}
	return g, nil
}

// Get searches for an entry by slug, then by case-insensitive word,
// then by the slugified form of the provided key (first hit wins).
// A miss is reported via the second return value, never as an error.
func (g *Glossary) Get(key string) (*Entry, bool) {
	if entry, ok := g.entries[key]; ok {
		return entry, true
	}
	if entry, ok := g.byWord[strings.ToLower(key)]; ok {
		return entry, true
	}
	if entry, ok := g.entries[ToSlug(key)]; ok {
		return entry, true
	}
	return nil, false
}

// MustGet behaves like Get but a miss produces ErrEntryNotFound
// (wrapped along with the searched key).
func (g *Glossary) MustGet(key string) (*Entry, error) {
	entry, ok := g.Get(key)
	if !ok {
		return nil, fmt.Errorf("failed to find '%s': %w", key, ErrEntryNotFound)
	}
	return entry, nil
}

func (g *Glossary) Contains(key string) bool {
	_, ok := g.Get(key)
	return ok
}

func (g *Glossary) Len() int {
	return len(g.entries)
}

// Slugs returns all entry slugs sorted alphabetically.
func (g *Glossary) Slugs() []string {
	ans := maps.Keys(g.entries)
	slices.Sort(ans)
	return ans
}

// Words returns display words of all entries sorted by their slug.
func (g *Glossary) Words() []string {
	ans := make([]string, 0, len(g.entries))
	for _, slug := range g.Slugs() {
		ans = append(ans, g.entries[slug].Word)
	}
	return ans
}

// ChildrenOf returns entries whose parent attribute refers to the
// provided slug, in the order their records were supplied to Load.
func (g *Glossary) ChildrenOf(slug string) []*Entry {
	childSlugs := g.children[slug]
	ans := make([]*Entry, len(childSlugs))
	for i, s := range childSlugs {
		ans[i] = g.entries[s]
	}
	return ans
}

// TopLevel returns entries without a parent, sorted by slug.
func (g *Glossary) TopLevel() []*Entry {
	ans := make([]*Entry, 0, len(g.entries))
	for _, entry := range g.entries {
		if !entry.HasParent() {
			ans = append(ans, entry)
		}
	}
	slices.SortFunc(ans, func(a, b *Entry) int {
		return strings.Compare(a.Slug, b.Slug)
	})
	return ans
}

// Entries returns all entries sorted by slug. The ordering is stable
// and independent of the load order - word list generators rely on it
// for reproducible output.
func (g *Glossary) Entries() []*Entry {
	ans := make([]*Entry, 0, len(g.entries))
	for _, slug := range g.Slugs() {
		ans = append(ans, g.entries[slug])
	}
	return ans
}
