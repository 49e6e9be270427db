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
package listing

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/sicxe/sicasm/pkg/asm"
	"github.com/sicxe/sicasm/pkg/asm/isa"
)

// Write renders a human-readable listing of an assembled program: address,
// label, mnemonic, operand and object code per line, with diagnostics
// reported beneath the lines that raised them.
func Write(w io.Writer, program *asm.Program) error {
	for _, line := range program.Lines {
		var (
			rec  = line.Record
			code = strings.ToUpper(hex.EncodeToString(line.Bytes))
			err  error
		)
		// Bookkeeping directives are listed without an address.
		if unaddressed(rec.BaseMnemonic()) {
			_, err = fmt.Fprintf(w, "%7s %-8s %-8s %-12s\n", "", rec.Label, rec.Mnemonic, rec.Operand)
		} else {
			_, err = fmt.Fprintf(w, "%05X   %-8s %-8s %-12s %s\n", line.Address, rec.Label, rec.Mnemonic, rec.Operand, code)
		}
		//
		if err != nil {
			return err
		}
		//
		for _, d := range line.Diagnostics {
			if _, err := fmt.Fprintf(w, "%7s *** %s: %s\n", "", d.Kind, d.Message()); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// WriteSymbols renders the symbol table, ordered by address.
func WriteSymbols(w io.Writer, program *asm.Program) error {
	for _, symbol := range program.Symbols.Symbols() {
		if _, err := fmt.Fprintf(w, "%10s: %05X\n", symbol.Name, symbol.Address); err != nil {
			return err
		}
	}
	//
	return nil
}

// Directives listed without an address column.
func unaddressed(mnemonic string) bool {
	switch directive, ok := isa.LookupDirective(mnemonic); {
	case !ok:
		return false
	case directive == isa.Start, directive == isa.End, directive == isa.Base, directive == isa.NoBase:
		return true
	default:
		return false
	}
}
