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
	"strings"

	"glosbook/common"
)

// ToSlug converts a display word to its slug form - lowercase with
// whitespace trimmed and inner spaces replaced by hyphens
// (e.g. "a posteriori" -> "a-posteriori"). Slugs serve as unique keys
// of glossary entries.
func ToSlug(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "-")
}

// SlugToWord converts a slug back to a display word (hyphens -> spaces).
// For a slug whose word contained a literal hyphen this is lossy, which
// is why entries may carry an explicit word attribute overriding
// the derivation.
func SlugToWord(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// Entry is a single glossary term with its definitions and
// cross-reference metadata. Entries are constructed once during
// glossary loading and never mutated afterwards.
type Entry struct {

	// Slug is a unique key of the entry (e.g. 'a-posteriori')
	Slug string

	// Word is the displayed form of the term. If the source record
	// does not provide it explicitly, it is derived from Slug.
	Word string

	// Definitions is a non-empty ordered list of definition texts
	// (possibly containing inline |keyword| markers)
	Definitions []string

	// Origin is a language of origin abbreviation (L., Gr., Heb., Fr.)
	Origin common.Maybe[string]

	// SourceWord is the original (Latin, Greek, ...) word the term
	// translates; rendered along with Origin
	SourceWord common.Maybe[string]

	// PartOfSpeech (n., adj., adv., v., prep., conj.)
	PartOfSpeech common.Maybe[string]

	Pronunciation common.Maybe[string]

	Plural common.Maybe[string]

	// ArchaicUsage explains why the word is used in an older sense
	// differing from modern usage. Only its presence matters for
	// rendering.
	ArchaicUsage common.Maybe[string]

	// TheologicalTerm explains why the word carries a specific
	// doctrinal meaning. Only its presence matters for rendering.
	TheologicalTerm common.Maybe[string]

	// NewWord marks terms not found in standard dictionaries
	NewWord bool

	// OppositeSlug refers to an antonym entry. It may dangle.
	OppositeSlug common.Maybe[string]

	// AlsoTranslated lists alternate rendering words
	AlsoTranslated []string

	// SeeAlso lists slugs of related entries. Items may dangle.
	SeeAlso []string

	// Parent is a slug of a containing entry. The observed data
	// forms a strict two-level hierarchy but the model itself does
	// not enforce that.
	Parent common.Maybe[string]
}

func (e *Entry) HasOrigin() bool {
	return !e.Origin.Empty()
}

func (e *Entry) HasPlural() bool {
	return !e.Plural.Empty()
}

func (e *Entry) HasOpposite() bool {
	return !e.OppositeSlug.Empty()
}

func (e *Entry) HasParent() bool {
	return !e.Parent.Empty()
}

func (e *Entry) HasAlsoTranslated() bool {
	return len(e.AlsoTranslated) > 0
}

// IsFlagged tests whether the entry is marked either as an archaic
// usage or as a specific theological term. Both variants share a single
// visible annotation in the rendered book.
func (e *Entry) IsFlagged() bool {
	return !e.ArchaicUsage.Empty() || !e.TheologicalTerm.Empty()
}
