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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mwdict"
)

var formatFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:               "json",
		Usage:              "print entries as JSON",
		DisableDefaultText: true,
	},
	&cli.BoolFlag{
		Name:               "table",
		Usage:              "print senses as a table",
		DisableDefaultText: true,
	},
}

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show entries in API response files",
	ArgsUsage: "FILE...",
	Flags:     formatFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no files given", ErrFlagParse)
		}
		if c.Bool("json") && c.Bool("table") {
			return fmt.Errorf("%w: --json and --table are mutually exclusive", ErrFlagParse)
		}

		p := newParser(c)

		var entries []*mwdict.Entry
		for _, path := range c.Args().Slice() {
			b, err := readResponse(c, path)
			if err != nil {
				return err
			}
			e, err := p.Parse(b)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrMwdict, path, err)
			}
			entries = append(entries, e...)
		}

		return output(c.App.Writer, entries, c.Bool("json"), c.Bool("table"))
	},
}
