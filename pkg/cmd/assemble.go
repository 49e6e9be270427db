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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sicxe/sicasm/pkg/asm"
	"github.com/sicxe/sicasm/pkg/asm/listing"
	"github.com/sicxe/sicasm/pkg/util/source"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble [flags] source_file",
	Short: "assemble a SIC/XE source file into an object program.",
	Long: `Assemble a given SIC/XE assembly source file into an object program,
	 optionally printing a listing and the symbol table.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		output := GetString(cmd, "output")
		if output == "" {
			output = strings.TrimSuffix(args[0], ".sic") + ".obj"
		}
		// Read source file
		srcfile, err := source.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		// Assemble it
		program, err := asm.Assemble(srcfile)
		// Fatal conditions abort immediately
		if err != nil {
			fmt.Printf("%s: %s\n", srcfile.Filename(), err)
			os.Exit(4)
		}
		//
		if GetFlag(cmd, "listing") {
			if err := listing.Write(os.Stdout, program); err != nil {
				fmt.Println(err)
				os.Exit(5)
			}
		}
		//
		if GetFlag(cmd, "symbols") {
			if err := listing.WriteSymbols(os.Stdout, program); err != nil {
				fmt.Println(err)
				os.Exit(5)
			}
		}
		// Report diagnostics
		if len(program.Diagnostics) != 0 {
			for _, diagnostic := range program.Diagnostics {
				printDiagnostic(&diagnostic)
			}
			// No object program for a program with errors
			os.Exit(4)
		}
		// Write object program
		file, err := os.Create(output)
		if err != nil {
			fmt.Println(err)
			os.Exit(5)
		}
		//
		defer file.Close()
		//
		if err := listing.WriteObject(file, program); err != nil {
			fmt.Println(err)
			os.Exit(5)
		}
		//
		log.Debugf("wrote object program %s (%d bytes of code)", output, program.Length)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(assembleCmd)
	assembleCmd.Flags().StringP("output", "o", "", "specify output file.")
	assembleCmd.Flags().BoolP("listing", "l", false, "print an assembly listing.")
	assembleCmd.Flags().BoolP("symbols", "s", false, "print the symbol table.")
}
