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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mwdict/cache"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List saved responses",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "only list words starting with `PREFIX`",
		},
	},
	Action: func(c *cli.Context) error {
		p := newParser(c)
		idx := cache.NewIndex(openResponses(c))

		tbl := table.New("Word", "Entries", "Path").WithWriter(c.App.Writer)
		for _, r := range idx.Prefix(c.String("prefix")) {
			entries, err := r.Entries(p)
			if err != nil {
				tbl.AddRow(r.Word(), "error", r.Path())
				continue
			}
			tbl.AddRow(r.Word(), len(entries), r.Path())
		}
		tbl.Print()

		return nil
	},
}
