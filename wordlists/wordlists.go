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

// Package wordlists extracts flat word tables from a loaded glossary -
// the "new words" and "misleading words" sections of the book. It is
// a plain consumer of the glossary read interface.
package wordlists

import (
	"fmt"
	"slices"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"glosbook/glossary"
)

const (
	DefaultTableColumns = 4

	newWordsHeader = `== New Words

There are more than a dozen new words in Swedenborg's Writings, many of them appearing only a few times or in one particular translation. There are five that are frequently used:

// Generated from the glossary source file - do not edit below this line
`

	// the book presents archaic usages and specific theological terms
	// under a common "Misleading Words" heading
	misleadingWordsHeader = `== Misleading Words

There are many words that have a different meaning than the average reader would expect. Here are some of them:

// Generated from the glossary source file - do not edit below this line
`
)

// NewWords extracts uppercased display words of entries marked as new
// words, de-duplicated and sorted. Two entries sharing one display
// word (e.g. a noun and an adjective variant) yield a single item.
func NewWords(g *glossary.Glossary) []string {
	return collectWords(g, func(e *glossary.Entry) bool { return e.NewWord })
}

// FlaggedWords extracts uppercased display words of entries marked
// either as archaic usages or as theological terms, de-duplicated
// and sorted.
func FlaggedWords(g *glossary.Glossary) []string {
	return collectWords(g, func(e *glossary.Entry) bool { return e.IsFlagged() })
}

func collectWords(g *glossary.Glossary, filter func(e *glossary.Entry) bool) []string {
	var ans []string
	for _, entry := range g.Entries() {
		word := strings.ToUpper(entry.Word)
		if filter(entry) && !collections.SliceContains(ans, word) {
			ans = append(ans, word)
		}
	}
	slices.Sort(ans)
	return ans
}

// FormatNewWords joins words into a single line with double-space
// separation (the form used for the short new-words listing).
func FormatNewWords(words []string) string {
	return strings.Join(words, "  ")
}

// FormatWordTable lays the words out as a borderless AsciiDoc table
// with the given number of columns, padding the last row with empty
// cells. An empty word list produces an empty string (no table
// fences).
func FormatWordTable(words []string, columns int) string {
	if len(words) == 0 {
		return ""
	}
	if columns <= 0 {
		columns = DefaultTableColumns
	}
	colsSpec := strings.TrimSuffix(strings.Repeat("1,", columns), ",")
	lines := []string{
		fmt.Sprintf("[cols=%q, frame=none, grid=none]", colsSpec),
		"|===",
	}
	for i := 0; i < len(words); i += columns {
		row := make([]string, columns)
		copy(row, words[i:min(i+columns, len(words))])
		lines = append(lines, "|"+strings.Join(row, " |"))
	}
	lines = append(lines, "|===")
	return strings.Join(lines, "\n")
}

// GenerateNewWordsDoc produces the complete new-words.adoc content.
func GenerateNewWordsDoc(g *glossary.Glossary) string {
	return newWordsHeader + FormatNewWords(NewWords(g)) + "\n"
}

// GenerateMisleadingWordsDoc produces the complete archaic-words.adoc
// content (titled "Misleading Words" in the book).
func GenerateMisleadingWordsDoc(g *glossary.Glossary, columns int) string {
	return misleadingWordsHeader + FormatWordTable(FlaggedWords(g), columns) + "\n"
}
