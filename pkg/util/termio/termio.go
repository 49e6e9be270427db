// Copyright The sicasm Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"os"

	"golang.org/x/term"
)

// DEFAULT_WIDTH is the width assumed when output is not going to a terminal
// (e.g. being piped into a file).
const DEFAULT_WIDTH = 80

// Width determines the width (in columns) of the attached terminal, falling
// back to a sensible default when there is no terminal to ask.
func Width() int {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return DEFAULT_WIDTH
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DEFAULT_WIDTH
	}
	//
	return width
}
