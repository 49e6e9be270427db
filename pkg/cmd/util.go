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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sicxe/sicasm/pkg/asm"
	"github.com/sicxe/sicasm/pkg/util/termio"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Print a diagnostic with appropriate highlighting.
func printDiagnostic(diagnostic *asm.Diagnostic) {
	var (
		err        = diagnostic.Err
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = span.Start() - line.Start()
		// Calculate length (ensures don't overflow line)
		length = min(line.Length()-lineOffset, span.Length())
		// Avoid wrapping on narrow terminals
		width = termio.Width()
	)
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	text := line.String()
	if len(text) > width {
		text = text[:width]
	}
	//
	fmt.Println(text)
	// Print highlight, unless it falls beyond the terminal
	if highlight := min(length, width-lineOffset); highlight > 0 {
		// Print indent (todo: account for tabs)
		fmt.Print(strings.Repeat(" ", lineOffset))
		fmt.Println(strings.Repeat("^", highlight))
	}
}
