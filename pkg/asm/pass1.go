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
package asm

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sicxe/sicasm/pkg/asm/isa"
)

// addressSpace is one beyond the highest address in SIC/XE memory.
const addressSpace = 1 << 20

// pass1 walks all records in order, advancing the location counter by the
// assembled length of each and binding every label to the address of its
// line.  Fatal conditions (malformed program bounds, exhausted address space)
// abort the run; everything else is reported as a diagnostic and assembly
// continues.
func (a *Assembly) pass1() error {
	n := len(a.records)
	//
	if n == 0 {
		return errors.New("empty program: no START directive")
	}
	//
	a.lengths = make([]uint32, n)
	a.suppressed = make([]bool, n)
	a.duplicate = make([]bool, n)
	// The program must be delimited by START and END, otherwise the location
	// counter can be neither initialised nor closed.
	first := &a.records[0]
	//
	if first.BaseMnemonic() != "START" {
		return fmt.Errorf("program must begin with a START directive, found %q", first.Mnemonic)
	}
	// START addresses are conventionally written in hex.
	origin, err := strconv.ParseUint(first.Operand, 16, 32)
	if err != nil {
		return fmt.Errorf("malformed START address %q", first.Operand)
	}
	//
	a.name = first.Label
	a.start = uint32(origin)
	a.entry = a.start
	//
	loc := a.start
	endIndex := -1
	//
	if first.Label != "" {
		a.symbols.Define(first.Label, loc)
	}
	//
	for i := 1; i < n; i++ {
		rec := &a.records[i]
		// Bind the label to the current address.
		if rec.Label != "" && !a.symbols.Define(rec.Label, loc) {
			a.duplicate[i] = true
			a.diagf(rec, DuplicateSymbol, rec.Span, "symbol %s is duplicately defined", rec.Label)
		}
		//
		if rec.BaseMnemonic() == "END" {
			endIndex = i
			break
		}
		//
		a.lengths[i] = a.recordLength(i)
		loc += a.lengths[i]
		//
		if loc > addressSpace {
			return fmt.Errorf("program exceeds SIC/XE address space at line %d", rec.Line)
		}
	}
	//
	if endIndex < 0 {
		return errors.New("program has no END directive")
	}
	// Anything after END is unreachable and dropped.
	a.records = a.records[:endIndex+1]
	a.lengths = a.lengths[:endIndex+1]
	a.suppressed = a.suppressed[:endIndex+1]
	a.duplicate = a.duplicate[:endIndex+1]
	//
	a.length = loc - a.start
	//
	return nil
}

// recordLength determines the number of bytes a record contributes to the
// program.  Lengths depend only on the instruction format (or directive size
// rule) and the operand syntax, which is what allows pass 2 to re-derive the
// identical addresses.  Operand errors which render the length meaningless
// suppress the record's encoding.
func (a *Assembly) recordLength(i int) uint32 {
	rec := &a.records[i]
	// A bare label contributes nothing.
	if rec.Mnemonic == "" {
		return 0
	}
	//
	if directive, ok := isa.LookupDirective(rec.BaseMnemonic()); ok {
		return a.directiveLength(i, directive)
	}
	//
	spec, ok := isa.Lookup(rec.BaseMnemonic())
	//
	if !ok {
		a.diagf(rec, UnknownMnemonic, rec.Span, "unknown mnemonic %q", rec.Mnemonic)
		a.suppressed[i] = true
		//
		return 0
	}
	//
	if rec.Extended() {
		if spec.Format != isa.Format3 {
			a.diagf(rec, IllegalExtension, rec.Span, "%s is not a format-3 instruction and cannot be extended", spec.Mnemonic)
			a.suppressed[i] = true
			//
			return spec.Format.Length()
		}
		//
		return isa.Format4.Length()
	}
	//
	return spec.Format.Length()
}

// directiveLength determines the number of bytes a directive contributes:
// reservations advance the location counter by their count, literals by their
// encoded size, and bookkeeping directives by nothing.
func (a *Assembly) directiveLength(i int, directive isa.Directive) uint32 {
	rec := &a.records[i]
	//
	switch directive {
	case isa.Word:
		return wordSize
	case isa.Byte:
		bytes, err := byteLiteral(rec.Operand)
		//
		if err != nil {
			a.diagError(rec, err, rec.OperandSpan)
			a.suppressed[i] = true
			//
			return 0
		}
		//
		return uint32(len(bytes))
	case isa.ResB, isa.ResW:
		count, err := reserveCount(rec.BaseMnemonic(), rec.Operand)
		//
		if err != nil {
			a.diagError(rec, err, rec.OperandSpan)
			a.suppressed[i] = true
			//
			return 0
		}
		//
		if directive == isa.ResW {
			return count * wordSize
		}
		//
		return count
	default:
		// START, END, BASE, NOBASE occupy no space.
		return 0
	}
}
