// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mwdict"
	"github.com/ianlewis/go-mwdict/cache"
	"github.com/ianlewis/go-mwdict/markup"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeNotFound is the exit code when no entries were found.
	ExitCodeNotFound
)

// ErrMwdict is a parent error for all command errors.
var ErrMwdict = errors.New("mwdict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrMwdict)

// ErrNotFound indicates that no entries were found.
var ErrNotFound = fmt.Errorf("%w: not found", ErrMwdict)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't want that.
	//
	// This is done because `mwdict --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newParser returns a parser configured from the global flags.
func newParser(c *cli.Context) *mwdict.Parser {
	sections := append([]string(nil), c.StringSlice("sections")...)
	if c.Bool("run-on") {
		sections = append(sections, mwdict.SectionRunOn)
	}

	markupOpts := &markup.Options{
		BaseURL: c.String("base-url"),
	}
	if c.Bool("discard-dx-def") {
		markupOpts.DefinitionCrossRefs = markup.Discard
	}

	return mwdict.NewParser(&mwdict.Options{
		Sections:          sections,
		AllPronunciations: c.Bool("all-pronunciations"),
		Markup:            markupOpts,
	})
}

// openResponses opens the saved responses in all data directories. Errors
// are written to the app's error writer.
func openResponses(c *cli.Context) []*cache.Response {
	var responses []*cache.Response
	for _, path := range c.StringSlice("data-dir") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			// Default locations may not exist.
			continue
		}

		openResponses, openErrs := cache.OpenAll(path)
		responses = append(responses, openResponses...)
		for _, err := range openErrs {
			fmt.Fprintln(c.App.ErrWriter, err)
		}
	}
	return responses
}

// readResponse reads a response from path. Saved response files are read
// with the cache package so compressed files are supported. "-" reads from
// stdin.
func readResponse(c *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("%w: reading stdin: %w", ErrMwdict, err)
		}
		return b, nil
	}

	r, err := cache.Open(path)
	if err == nil {
		return r.Data(), nil
	}
	if !errors.Is(err, cache.ErrUnsupported) {
		return nil, fmt.Errorf("%w: %w", ErrMwdict, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMwdict, err)
	}
	return b, nil
}

func newMwdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Display Merriam-Webster dictionary entries.",
		Description: strings.Join([]string{
			"Merriam-Webster Collegiate Dictionary API utility written in Go.",
			"http://github.com/ianlewis/go-mwdict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include saved responses in `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"MWDICT_DATA_DIR"},
				Value:   cli.NewStringSlice(dataLocations()...),
			},
			&cli.StringSliceFlag{
				Name:    "sections",
				Usage:   "accept entries in `SECTION`",
				EnvVars: []string{"MWDICT_SECTIONS"},
				Value:   cli.NewStringSlice(mwdict.DefaultOptions.Sections...),
			},
			&cli.BoolFlag{
				Name:               "run-on",
				Usage:              "accept run-on phrase entries",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "all-pronunciations",
				Usage:              "show all pronunciations",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "discard-dx-def",
				Usage:              "discard cross-references to definitions",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "link words to `URL`",
				EnvVars: []string{"MWDICT_BASE_URL"},
				Value:   markup.DefaultBaseURL,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			showCommand,
			queryCommand,
			listCommand,
		},
	}
}
