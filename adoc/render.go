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

package adoc

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"glosbook/common"
	"glosbook/glossary"
)

// maxNestingDepth limits the parent/child recursion. The observed data
// never exceeds two levels; anything deeper is skipped with a warning.
const maxNestingDepth = 8

// resolveWord translates a referenced slug to the display word of its
// target entry. A dangling reference falls back to the humanized slug
// so rendering never fails on it.
func resolveWord(g *glossary.Glossary, slug string) string {
	if entry, ok := g.Get(slug); ok {
		return entry.Word
	}
	log.Debug().
		Str("slug", slug).
		Msg("unresolved cross-reference, using the humanized slug")
	return glossary.SlugToWord(slug)
}

// metadataCluster assembles the parenthesized attributes following the
// uppercased head word. The order of the pieces is fixed. Note that
// an archaic usage and a theological term collapse into one shared
// [misleading] tag - the book intentionally does not distinguish them.
func metadataCluster(entry *glossary.Entry) string {
	parts := make([]string, 0, 6)
	entry.Plural.Apply(func(v string) {
		parts = append(parts, fmt.Sprintf("(pl. %s)", v))
	})
	if origin, ok := entry.Origin.Value(); ok {
		if srcWord, ok := entry.SourceWord.Value(); ok {
			parts = append(parts, fmt.Sprintf("(%s _%s_)", origin, strings.ToUpper(srcWord)))

		} else {
			parts = append(parts, fmt.Sprintf("(%s)", origin))
		}
	}
	entry.PartOfSpeech.Apply(func(v string) {
		parts = append(parts, fmt.Sprintf("(%s)", v))
	})
	entry.Pronunciation.Apply(func(v string) {
		parts = append(parts, fmt.Sprintf("/%s/", v))
	})
	if entry.IsFlagged() {
		parts = append(parts, "[misleading]")
	}
	if entry.NewWord {
		parts = append(parts, "[new word]")
	}
	return strings.Join(parts, " ")
}

func renderEntry(entry *glossary.Entry, g *glossary.Glossary, depth int) string {
	lines := make([]string, 0, 4+len(entry.Definitions))

	// an anchor allows xref links from other entries
	lines = append(lines, fmt.Sprintf("[[%s]]", entry.Slug))

	headWord := fmt.Sprintf("**%s**", strings.ToUpper(entry.Word))
	if meta := metadataCluster(entry); meta != "" {
		headWord += " " + meta
	}
	if len(entry.Definitions) == 1 {
		lines = append(lines, headWord+" = "+RewriteInline(entry.Definitions[0]))

	} else {
		lines = append(lines, headWord+" =")
		for i, defn := range entry.Definitions {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, RewriteInline(defn)))
		}
	}

	entry.OppositeSlug.Apply(func(slug string) {
		lines[len(lines)-1] += " +"
		lines = append(lines, fmt.Sprintf("Opp. **%s**", strings.ToUpper(resolveWord(g, slug))))
	})

	if entry.HasAlsoTranslated() {
		altWords := common.MapSlice(entry.AlsoTranslated, func(w string, _ int) string {
			return fmt.Sprintf("**%s**", strings.ToUpper(w))
		})
		lines[len(lines)-1] += " +"
		lines = append(lines, fmt.Sprintf("(also transl. %s)", strings.Join(altWords, " and ")))
	}

	if len(entry.SeeAlso) > 0 {
		refs := common.MapSlice(entry.SeeAlso, func(slug string, _ int) string {
			return fmt.Sprintf("xref:%s[**%s**]", slug, strings.ToUpper(resolveWord(g, slug)))
		})
		lines[len(lines)-1] += " +"
		lines = append(lines, "See also: "+strings.Join(refs, ", "))
	}

	if depth >= maxNestingDepth {
		if len(g.ChildrenOf(entry.Slug)) > 0 {
			log.Warn().
				Str("slug", entry.Slug).
				Int("depth", depth).
				Msg("entry nesting exceeds the supported depth, skipping children")
		}
		return strings.Join(lines, "\n")
	}
	for _, child := range g.ChildrenOf(entry.Slug) {
		childBlock := renderEntry(child, g, depth+1)
		indented := make([]string, 0, strings.Count(childBlock, "\n")+1)
		for _, line := range strings.Split(childBlock, "\n") {
			if strings.TrimSpace(line) != "" {
				// {nbsp} keeps the indentation through the PDF typesetting
				indented = append(indented, "{nbsp}{nbsp}"+line)
			}
		}
		if len(indented) > 0 {
			lines[len(lines)-1] += " +"
			lines = append(lines, indented...)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderEntry produces the complete AsciiDoc block of a single entry,
// including its recursively nested child entries. Rendering is a pure
// function of the entry and the glossary; dangling references degrade
// to the humanized-slug fallback instead of failing.
func RenderEntry(entry *glossary.Entry, g *glossary.Glossary) string {
	return renderEntry(entry, g, 0)
}

// RenderDocument produces the glossary body of the book: all top-level
// entries sorted by slug, grouped into letter sections. A section
// heading is emitted exactly when the uppercased first letter of the
// display word changes between consecutive entries - grouping is
// a side effect of the slug sort order, not an independent letter
// sort. Data whose slugs are not alphabetically aligned with display
// words would therefore produce out-of-order sections; that coupling
// is intentional and matches the book build.
func RenderDocument(g *glossary.Glossary) string {
	var lines []string
	currLetter := ""
	for _, entry := range g.TopLevel() {
		firstLetter := strings.ToUpper(string([]rune(entry.Word)[0]))
		if firstLetter != currLetter {
			if currLetter != "" {
				lines = append(lines, "")
			}
			lines = append(lines, "== "+firstLetter, "")
			currLetter = firstLetter
		}
		lines = append(lines, RenderEntry(entry, g), "")
	}
	return strings.Join(lines, "\n")
}
