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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// File represents a parsed glossary JSON document. Records keep the
// order of keys of the source 'entries' object, which a plain Go map
// would not preserve - hence the token-level parsing below.
type File struct {
	Version string
	Title   string
	Records []Record
}

func parseEntries(dec *json.Decoder) ([]Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("the 'entries' attribute must be a JSON object")
	}
	var ans []Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		slug := keyTok.(string)
		var rec RawRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode record '%s': %w", slug, err)
		}
		ans = append(ans, Record{Slug: slug, Data: rec})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ans, nil
}

// ParseFile decodes a raw glossary JSON document into an ordered
// record sequence plus document metadata.
func ParseFile(data []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse glossary file: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse glossary file: the document must be a JSON object")
	}
	ans := new(File)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse glossary file: %w", err)
		}
		switch key := keyTok.(string); key {
		case "version":
			if err := dec.Decode(&ans.Version); err != nil {
				return nil, fmt.Errorf("failed to parse glossary file: %w", err)
			}
		case "title":
			if err := dec.Decode(&ans.Title); err != nil {
				return nil, fmt.Errorf("failed to parse glossary file: %w", err)
			}
		case "entries":
			records, err := parseEntries(dec)
			if err != nil {
				return nil, fmt.Errorf("failed to parse glossary file: %w", err)
			}
			ans.Records = records
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("failed to parse glossary file: %w", err)
			}
		}
	}
	return ans, nil
}

// LoadString parses a glossary JSON string and builds the glossary.
func LoadString(data string) (*Glossary, error) {
	gf, err := ParseFile([]byte(data))
	if err != nil {
		return nil, err
	}
	return Load(gf.Records)
}

// LoadFile reads a glossary JSON file and builds the glossary.
// Schema validation is a caller's concern (see the schema package) -
// loading itself checks just the core invariants of the records.
func LoadFile(path string) (*Glossary, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load glossary file: %w", err)
	}
	gf, err := ParseFile(rawData)
	if err != nil {
		return nil, err
	}
	return Load(gf.Records)
}
