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

// Package adoc renders glossary entries into AsciiDoc text blocks
// suitable for inclusion in the typeset book.
package adoc

import (
	"regexp"
	"strings"
)

var (
	italicKeywordRegexp = regexp.MustCompile(`_\|([^|]+)\|_`)
	keywordRegexp       = regexp.MustCompile(`\|([^|]+)\|`)
)

// RewriteInline converts inline keyword markers of definition texts
// into AsciiDoc emphasis:
//
//	_|word|_  ->  _**WORD**_   (italic keyword reference)
//	|word|    ->  **WORD**     (keyword reference)
//
// The italic form must be substituted first - the plain pattern is
// a strict substring of the italic one, so the reversed order would
// mis-nest the produced markup. Markers are non-greedy and never
// nested; each definition string is processed independently.
func RewriteInline(text string) string {
	text = italicKeywordRegexp.ReplaceAllStringFunc(text, func(m string) string {
		srch := italicKeywordRegexp.FindStringSubmatch(m)
		return "_**" + strings.ToUpper(srch[1]) + "**_"
	})
	return keywordRegexp.ReplaceAllStringFunc(text, func(m string) string {
		srch := keywordRegexp.FindStringSubmatch(m)
		return "**" + strings.ToUpper(srch[1]) + "**"
	})
}
