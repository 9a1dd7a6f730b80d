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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltBookDir         = "book"
	dfltWordListColumns = 4
)

// Conf is a global configuration of the glosbook tools
type Conf struct {
	// GlossaryPath is a path to the glossary JSON file
	GlossaryPath string `json:"glossaryPath"`

	// SchemaPath is a path to the JSON Schema the glossary file is
	// validated against before loading. If empty, validation is
	// skipped with a warning.
	SchemaPath string `json:"schemaPath"`

	// BookDir is a directory the generated word list files are
	// written to
	BookDir string `json:"bookDir"`

	// WordListColumns is the number of columns of the misleading
	// words table
	WordListColumns int `json:"wordListColumns"`

	Logging logging.LoggingConf `json:"logging"`

	srcPath string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ApplyDefaults(conf *Conf) {
	if conf.GlossaryPath == "" {
		log.Fatal().Msg("glossaryPath not specified")
	}
	if conf.BookDir == "" {
		conf.BookDir = dfltBookDir
		log.Warn().Msgf(
			"bookDir not specified, using default: %s",
			dfltBookDir,
		)
	}
	if conf.WordListColumns == 0 {
		conf.WordListColumns = dfltWordListColumns
		log.Warn().Msgf(
			"wordListColumns not specified, using default: %d",
			dfltWordListColumns,
		)
	}
}
