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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"glosbook/glossary"
)

func strPtr(v string) *string {
	return &v
}

func loadTestingGlossary(t *testing.T, records []glossary.Record) *glossary.Glossary {
	g, err := glossary.Load(records)
	assert.NoError(t, err)
	return g
}

func TestRenderBareEntry(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "faith", Data: glossary.RawRecord{
			Definitions: []string{"trust in things unseen"},
		}},
	})
	entry, _ := g.Get("faith")
	assert.Equal(
		t,
		"[[faith]]\n**FAITH** = trust in things unseen",
		RenderEntry(entry, g),
	)
}

func TestRenderMetadataClusterOrder(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "arcanum", Data: glossary.RawRecord{
			Definitions:   []string{"a secret"},
			Plural:        strPtr("arcana"),
			Origin:        strPtr("L."),
			SourceWord:    strPtr("arcanum"),
			PartOfSpeech:  strPtr("n."),
			Pronunciation: strPtr("ar-kay'num"),
			ArchaicUsage:  strPtr("older sense"),
			NewWord:       true,
		}},
	})
	entry, _ := g.Get("arcanum")
	assert.Equal(
		t,
		"[[arcanum]]\n**ARCANUM** (pl. arcana) (L. _ARCANUM_) (n.) /ar-kay'num/ [misleading] [new word] = a secret",
		RenderEntry(entry, g),
	)
}

func TestRenderOriginWithoutSourceWord(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "a-posteriori", Data: glossary.RawRecord{
			Definitions: []string{"reasoning from experience"},
			Origin:      strPtr("L."),
		}},
	})
	entry, _ := g.Get("a-posteriori")
	assert.Equal(
		t,
		"[[a-posteriori]]\n**A POSTERIORI** (L.) = reasoning from experience",
		RenderEntry(entry, g),
	)
}

func TestRenderMultipleDefinitions(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "celestial", Data: glossary.RawRecord{
			Definitions: []string{
				"belonging to the highest heaven",
				"relating to love to the Lord",
			},
		}},
	})
	entry, _ := g.Get("celestial")
	assert.Equal(
		t,
		"[[celestial]]\n**CELESTIAL** =\n1. belonging to the highest heaven\n2. relating to love to the Lord",
		RenderEntry(entry, g),
	)
}

func TestRenderDefinitionsPassThroughMarkup(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "astroid", Data: glossary.RawRecord{
			Definitions: []string{"star-shaped; see _|astroites|_"},
		}},
	})
	entry, _ := g.Get("astroid")
	ans := RenderEntry(entry, g)
	assert.Contains(t, ans, "_**ASTROITES**_")
	assert.NotContains(t, ans, "_**|ASTROITES|**_")
}

// Both an archaic usage and a theological term produce the very same
// [misleading] tag - the book does not distinguish them.
func TestRenderFlagCollapse(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "term-a", Data: glossary.RawRecord{
			Word:         strPtr("term"),
			Definitions:  []string{"d"},
			ArchaicUsage: strPtr("older sense"),
		}},
		{Slug: "term-b", Data: glossary.RawRecord{
			Word:            strPtr("term"),
			Definitions:     []string{"d"},
			TheologicalTerm: strPtr("doctrinal sense"),
		}},
	})
	archaic, _ := g.Get("term-a")
	theological, _ := g.Get("term-b")
	archaicLines := strings.Split(RenderEntry(archaic, g), "\n")
	theologicalLines := strings.Split(RenderEntry(theological, g), "\n")
	assert.Equal(t, "**TERM** [misleading] = d", archaicLines[1])
	assert.Equal(t, archaicLines[1], theologicalLines[1])
}

func TestRenderOppositeResolved(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "accede", Data: glossary.RawRecord{
			Definitions:  []string{"to approach"},
			OppositeSlug: strPtr("recede"),
		}},
		{Slug: "recede", Data: glossary.RawRecord{
			Definitions: []string{"to withdraw"},
		}},
	})
	entry, _ := g.Get("accede")
	assert.Equal(
		t,
		"[[accede]]\n**ACCEDE** = to approach +\nOpp. **RECEDE**",
		RenderEntry(entry, g),
	)
}

func TestRenderOppositeDanglingFallback(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "accede", Data: glossary.RawRecord{
			Definitions:  []string{"to approach"},
			OppositeSlug: strPtr("recede-away"),
		}},
	})
	entry, _ := g.Get("accede")
	assert.Equal(
		t,
		"[[accede]]\n**ACCEDE** = to approach +\nOpp. **RECEDE AWAY**",
		RenderEntry(entry, g),
	)
}

func TestRenderAlsoTranslated(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "betroth", Data: glossary.RawRecord{
			Definitions:    []string{"to promise in marriage"},
			AlsoTranslated: []string{"affiance", "espouse"},
		}},
	})
	entry, _ := g.Get("betroth")
	assert.Equal(
		t,
		"[[betroth]]\n**BETROTH** = to promise in marriage +\n(also transl. **AFFIANCE** and **ESPOUSE**)",
		RenderEntry(entry, g),
	)
}

func TestRenderSeeAlso(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "celestial", Data: glossary.RawRecord{
			Definitions: []string{"belonging to the highest heaven"},
			SeeAlso:     []string{"spiritual", "natural-degree"},
		}},
		{Slug: "spiritual", Data: glossary.RawRecord{
			Definitions: []string{"relating to truth"},
		}},
	})
	entry, _ := g.Get("celestial")
	// 'natural-degree' dangles and falls back to the humanized slug
	assert.Equal(
		t,
		"[[celestial]]\n**CELESTIAL** = belonging to the highest heaven +\n"+
			"See also: xref:spiritual[**SPIRITUAL**], xref:natural-degree[**NATURAL DEGREE**]",
		RenderEntry(entry, g),
	)
}

func TestRenderChildrenNested(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "celestial", Data: glossary.RawRecord{
			Definitions: []string{"belonging to the highest heaven"},
		}},
		{Slug: "celestial-angel", Data: glossary.RawRecord{
			Definitions: []string{"an angel of the inmost heaven"},
			Parent:      strPtr("celestial"),
		}},
		{Slug: "celestial-heaven", Data: glossary.RawRecord{
			Definitions: []string{"the inmost heaven"},
			Parent:      strPtr("celestial"),
		}},
	})
	entry, _ := g.Get("celestial")
	assert.Equal(
		t,
		"[[celestial]]\n"+
			"**CELESTIAL** = belonging to the highest heaven +\n"+
			"{nbsp}{nbsp}[[celestial-angel]]\n"+
			"{nbsp}{nbsp}**CELESTIAL ANGEL** = an angel of the inmost heaven +\n"+
			"{nbsp}{nbsp}[[celestial-heaven]]\n"+
			"{nbsp}{nbsp}**CELESTIAL HEAVEN** = the inmost heaven",
		RenderEntry(entry, g),
	)
}

func TestRenderDocumentSections(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "apple", Data: glossary.RawRecord{Definitions: []string{"a fruit"}}},
		{Slug: "bread", Data: glossary.RawRecord{Definitions: []string{"baked food"}}},
	})
	assert.Equal(
		t,
		"== A\n\n[[apple]]\n**APPLE** = a fruit\n\n\n== B\n\n[[bread]]\n**BREAD** = baked food\n",
		RenderDocument(g),
	)
}

func TestRenderDocumentEndToEnd(t *testing.T) {
	g := loadTestingGlossary(t, []glossary.Record{
		{Slug: "a-posteriori", Data: glossary.RawRecord{
			Definitions: []string{"reasoning from experience"},
			Origin:      strPtr("L."),
		}},
		{Slug: "accede", Data: glossary.RawRecord{
			Definitions:  []string{"to approach"},
			OppositeSlug: strPtr("recede"),
		}},
		{Slug: "arcanum", Data: glossary.RawRecord{
			Definitions: []string{"a secret"},
			Plural:      strPtr("arcana"),
		}},
		{Slug: "astroid", Data: glossary.RawRecord{
			Definitions: []string{"star-shaped; see _|astroites|_"},
		}},
		{Slug: "betroth", Data: glossary.RawRecord{
			Definitions:    []string{"to promise in marriage"},
			AlsoTranslated: []string{"affiance"},
		}},
		{Slug: "celestial", Data: glossary.RawRecord{
			Definitions: []string{"belonging to the highest heaven"},
		}},
		{Slug: "celestial-angel", Data: glossary.RawRecord{
			Definitions: []string{"an angel of the inmost heaven"},
			Parent:      strPtr("celestial"),
		}},
		{Slug: "celestial-heaven", Data: glossary.RawRecord{
			Definitions: []string{"the inmost heaven"},
			Parent:      strPtr("celestial"),
		}},
		{Slug: "conjugial", Data: glossary.RawRecord{
			Definitions:   []string{"relating to marriage love"},
			Pronunciation: strPtr("conju'jul"),
		}},
	})
	doc := RenderDocument(g)

	sectionA := strings.Index(doc, "== A")
	sectionB := strings.Index(doc, "== B")
	sectionC := strings.Index(doc, "== C")
	assert.GreaterOrEqual(t, sectionA, 0)
	assert.Greater(t, sectionB, sectionA)
	assert.Greater(t, sectionC, sectionB)

	assert.Contains(t, doc, "{nbsp}{nbsp}**CELESTIAL ANGEL**")
	assert.Contains(t, doc, "{nbsp}{nbsp}**CELESTIAL HEAVEN**")
	assert.Greater(t, strings.Index(doc, "**CELESTIAL ANGEL**"), strings.Index(doc, "**CELESTIAL** ="))
	assert.Contains(t, doc, "Opp. **RECEDE**")
	assert.Contains(t, doc, "(also transl. **AFFIANCE**)")
	assert.Contains(t, doc, "(pl. arcana)")
	assert.Contains(t, doc, "/conju'jul/")
	assert.Contains(t, doc, "_**ASTROITES**_")
}
