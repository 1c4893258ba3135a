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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mwdict"
	"github.com/ianlewis/go-mwdict/cache"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Look up a word in saved responses",
	ArgsUsage: "WORD",
	Flags:     formatFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no word given", ErrFlagParse)
		}
		if c.Bool("json") && c.Bool("table") {
			return fmt.Errorf("%w: --json and --table are mutually exclusive", ErrFlagParse)
		}
		word := strings.Join(c.Args().Slice(), " ")

		p := newParser(c)
		idx := cache.NewIndex(openResponses(c))

		var entries []*mwdict.Entry
		for _, r := range idx.Search(word) {
			e, err := r.Entries(p)
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
				continue
			}
			entries = append(entries, e...)
		}

		if len(entries) == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, word)
		}
		return output(c.App.Writer, entries, c.Bool("json"), c.Bool("table"))
	},
}
