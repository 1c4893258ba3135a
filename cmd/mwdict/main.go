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
	"os"
)

func main() {
	app := newMwdictApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "%s: %v\n", app.Name, err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}
