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

// Package schema validates raw glossary JSON documents against an
// external JSON Schema file before they are handed over to the
// glossary loader. The loader itself checks only core record
// invariants, so skipping this step (e.g. for trusted data) is safe
// but not recommended.
package schema

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validate checks a raw glossary JSON document against the JSON Schema
// stored at schemaPath. A validation failure is returned as a wrapped
// error carrying the offending JSON pointer (as reported by the
// jsonschema library).
func Validate(docData []byte, schemaPath string) error {
	sch, err := jsonschema.NewCompiler().Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to compile glossary schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(docData))
	if err != nil {
		return fmt.Errorf("failed to decode glossary document: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("glossary document failed schema validation: %w", err)
	}
	return nil
}
