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
	"fmt"

	"glosbook/common"
)

// LoadValidationError is returned when a raw glossary record cannot
// produce a valid Entry. It aborts the whole load - the caller never
// obtains a partial glossary.
type LoadValidationError struct {
	Slug   string
	Reason string
}

func (err *LoadValidationError) Error() string {
	return fmt.Sprintf("invalid glossary record '%s': %s", err.Slug, err.Reason)
}

// RawRecord mirrors a single entry object of the glossary JSON file.
// All the optional attributes are pointers so a missing attribute can
// be told apart from an empty one.
type RawRecord struct {
	Word            *string  `json:"word,omitempty"`
	Definitions     []string `json:"definitions"`
	Origin          *string  `json:"origin,omitempty"`
	SourceWord      *string  `json:"latin_word,omitempty"`
	PartOfSpeech    *string  `json:"part_of_speech,omitempty"`
	Pronunciation   *string  `json:"pronunciation,omitempty"`
	Plural          *string  `json:"plural,omitempty"`
	ArchaicUsage    *string  `json:"archaic_usage,omitempty"`
	TheologicalTerm *string  `json:"theological_term,omitempty"`
	NewWord         bool     `json:"new_word,omitempty"`
	OppositeSlug    *string  `json:"opposite_slug,omitempty"`
	AlsoTranslated  []string `json:"also_translated,omitempty"`
	SeeAlso         []string `json:"see_also,omitempty"`
	Parent          *string  `json:"parent,omitempty"`
}

// Record is a keyed raw record. Glossary loading consumes an ordered
// sequence of these; the order determines the children-of ordering of
// the resulting glossary (see Glossary.ChildrenOf).
type Record struct {
	Slug string
	Data RawRecord
}

// FromRecord creates an immutable Entry out of a raw record. The word
// attribute is optional in the source data - if absent, it is derived
// from the slug. A record without definitions produces
// a LoadValidationError.
func FromRecord(slug string, rec RawRecord) (*Entry, error) {
	if len(rec.Definitions) == 0 {
		return nil, &LoadValidationError{Slug: slug, Reason: "record has no definitions"}
	}
	word := SlugToWord(slug)
	if rec.Word != nil {
		word = *rec.Word
	}
	return &Entry{
		Slug:            slug,
		Word:            word,
		Definitions:     rec.Definitions,
		Origin:          common.MaybeFromPtr(rec.Origin),
		SourceWord:      common.MaybeFromPtr(rec.SourceWord),
		PartOfSpeech:    common.MaybeFromPtr(rec.PartOfSpeech),
		Pronunciation:   common.MaybeFromPtr(rec.Pronunciation),
		Plural:          common.MaybeFromPtr(rec.Plural),
		ArchaicUsage:    common.MaybeFromPtr(rec.ArchaicUsage),
		TheologicalTerm: common.MaybeFromPtr(rec.TheologicalTerm),
		NewWord:         rec.NewWord,
		OppositeSlug:    common.MaybeFromPtr(rec.OppositeSlug),
		AlsoTranslated:  rec.AlsoTranslated,
		SeeAlso:         rec.SeeAlso,
		Parent:          common.MaybeFromPtr(rec.Parent),
	}, nil
}
