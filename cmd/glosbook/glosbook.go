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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"glosbook/adoc"
	"glosbook/cnf"
	"glosbook/glossary"
	"glosbook/schema"
	"glosbook/wordlists"
)

type cmdAction string

const (
	cmdActionExport    cmdAction = "export"
	cmdActionWordlists cmdAction = "wordlists"
	cmdActionInspect   cmdAction = "inspect"
	cmdActionVersion   cmdAction = "version"

	newWordsFilename = "new-words.adoc"
	// kept under the historical name even though the book section
	// is titled "Misleading Words"
	archaicWordsFilename = "archaic-words.adoc"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// Export subcommand flags
type exportArgs struct {
	configPath string
	outputPath string
	noValidate bool
}

// Wordlists subcommand flags
type wordlistsArgs struct {
	configPath string
	noValidate bool
}

// Inspect subcommand flags
type inspectArgs struct {
	configPath string
	key        string
	noValidate bool
}

func setup(configPath string) *cnf.Conf {
	conf := cnf.LoadConfig(configPath)
	logging.SetupLogging(conf.Logging)
	cnf.ApplyDefaults(conf)
	return conf
}

func loadGlossary(conf *cnf.Conf, noValidate bool) *glossary.Glossary {
	rawData, err := os.ReadFile(conf.GlossaryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load glossary")
	}
	if noValidate {
		log.Warn().Msg("schema validation disabled by the user")

	} else if conf.SchemaPath == "" {
		log.Warn().Msg("schemaPath not configured, skipping schema validation")

	} else if err := schema.Validate(rawData, conf.SchemaPath); err != nil {
		log.Fatal().Err(err).Msg("failed to load glossary")
	}
	gf, err := glossary.ParseFile(rawData)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load glossary")
	}
	g, err := glossary.Load(gf.Records)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load glossary")
	}
	return g
}

func runExport(args exportArgs) {
	conf := setup(args.configPath)
	g := loadGlossary(conf, args.noValidate)
	doc := adoc.RenderDocument(g)
	if args.outputPath == "" {
		fmt.Println(doc)
		return
	}
	if err := os.WriteFile(args.outputPath, []byte(doc), 0644); err != nil {
		log.Fatal().Err(err).Msg("failed to write the exported document")
	}
	printer := message.NewPrinter(language.English)
	printer.Fprintf(os.Stderr, "Wrote %s (%d entries)\n", args.outputPath, g.Len())
}

func runWordlists(args wordlistsArgs) {
	conf := setup(args.configPath)
	isDir, err := fs.IsDir(conf.BookDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate word lists")
	}
	if !isDir {
		log.Fatal().Msgf("failed to generate word lists: %s is not a directory", conf.BookDir)
	}
	g := loadGlossary(conf, args.noValidate)
	printer := message.NewPrinter(language.English)

	newWordsPath := filepath.Join(conf.BookDir, newWordsFilename)
	if err := os.WriteFile(newWordsPath, []byte(wordlists.GenerateNewWordsDoc(g)), 0644); err != nil {
		log.Fatal().Err(err).Msg("failed to generate word lists")
	}
	printer.Fprintf(os.Stderr, "Wrote %s (%d words)\n", newWordsPath, len(wordlists.NewWords(g)))

	archaicWordsPath := filepath.Join(conf.BookDir, archaicWordsFilename)
	misleadingDoc := wordlists.GenerateMisleadingWordsDoc(g, conf.WordListColumns)
	if err := os.WriteFile(archaicWordsPath, []byte(misleadingDoc), 0644); err != nil {
		log.Fatal().Err(err).Msg("failed to generate word lists")
	}
	printer.Fprintf(os.Stderr, "Wrote %s (%d words)\n", archaicWordsPath, len(wordlists.FlaggedWords(g)))
}

func runInspect(args inspectArgs) {
	conf := setup(args.configPath)
	g := loadGlossary(conf, args.noValidate)
	entry, err := g.MustGet(args.key)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to inspect entry")
	}
	fmt.Print(spew.Sdump(entry))
	for i, child := range g.ChildrenOf(entry.Slug) {
		fmt.Printf("--- child %d ---\n%s", i+1, spew.Sdump(child))
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Commands: %s, %s, %s, %s\n",
			cmdActionExport, cmdActionWordlists, cmdActionInspect, cmdActionVersion)
		os.Exit(1)
	}

	// Create subcommand flag sets
	exportCmd := flag.NewFlagSet(string(cmdActionExport), flag.ExitOnError)
	wordlistsCmd := flag.NewFlagSet(string(cmdActionWordlists), flag.ExitOnError)
	inspectCmd := flag.NewFlagSet(string(cmdActionInspect), flag.ExitOnError)

	exportCmd.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"export the glossary to AsciiDoc\n\nUsage:\n\t%s export [options] config.json [output.adoc]\n\n",
			filepath.Base(os.Args[0]))
		exportCmd.PrintDefaults()
	}
	wordlistsCmd.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"generate new/misleading word list files into the book directory\n\nUsage:\n\t%s wordlists [options] config.json\n\n",
			filepath.Base(os.Args[0]))
		wordlistsCmd.PrintDefaults()
	}
	inspectCmd.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"dump a single resolved entry\n\nUsage:\n\t%s inspect [options] config.json <slug or word>\n\n",
			filepath.Base(os.Args[0]))
		inspectCmd.PrintDefaults()
	}

	var exportOpts exportArgs
	exportCmd.BoolVar(&exportOpts.noValidate, "no-validate", false, "skip JSON Schema validation of the glossary file")

	var wordlistsOpts wordlistsArgs
	wordlistsCmd.BoolVar(&wordlistsOpts.noValidate, "no-validate", false, "skip JSON Schema validation of the glossary file")

	var inspectOpts inspectArgs
	inspectCmd.BoolVar(&inspectOpts.noValidate, "no-validate", false, "skip JSON Schema validation of the glossary file")

	// Parse based on subcommand
	switch cmdAction(os.Args[1]) {
	case cmdActionExport:
		if err := exportCmd.Parse(os.Args[2:]); err != nil {
			os.Exit(1)
		}
		exportOpts.configPath = exportCmd.Arg(0)
		exportOpts.outputPath = exportCmd.Arg(1)
		runExport(exportOpts)

	case cmdActionWordlists:
		if err := wordlistsCmd.Parse(os.Args[2:]); err != nil {
			os.Exit(1)
		}
		wordlistsOpts.configPath = wordlistsCmd.Arg(0)
		runWordlists(wordlistsOpts)

	case cmdActionInspect:
		if err := inspectCmd.Parse(os.Args[2:]); err != nil {
			os.Exit(1)
		}
		inspectOpts.configPath = inspectCmd.Arg(0)
		inspectOpts.key = inspectCmd.Arg(1)
		if inspectOpts.key == "" {
			inspectCmd.Usage()
			os.Exit(1)
		}
		runInspect(inspectOpts)

	case cmdActionVersion:
		fmt.Printf("glosbook %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Commands: %s, %s, %s, %s\n",
			cmdActionExport, cmdActionWordlists, cmdActionInspect, cmdActionVersion)
		os.Exit(1)
	}
}
