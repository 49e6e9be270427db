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
	"fmt"

	"github.com/sicxe/sicasm/pkg/asm/isa"
)

// pass2 re-walks all records in pass-1 order, resolving operands against the
// completed symbol table and encoding each line.  A failing line produces
// diagnostics instead of bytes; assembly always continues with the next line.
func (a *Assembly) pass2() []AssembledLine {
	var (
		loc   = a.start
		lines = make([]AssembledLine, len(a.records))
	)
	// Base declarations take effect in pass-2 order.
	a.base = nil
	//
	for i := range a.records {
		rec := &a.records[i]
		line := AssembledLine{Record: *rec, Address: loc}
		//
		if !a.suppressed[i] {
			a.encode(i, &line, loc+a.lengths[i])
		}
		// The address derived here must equal the binding recorded in pass 1;
		// divergence is a logic fault, not a user error.
		if rec.Label != "" && !a.duplicate[i] {
			if bound, ok := a.symbols.Resolve(rec.Label); ok && bound != loc {
				panic(fmt.Sprintf("pass 2 address %06X diverges from pass 1 binding %06X for %s",
					loc, bound, rec.Label))
			}
		}
		//
		lines[i] = line
		loc += a.lengths[i]
	}
	//
	return lines
}

// encode produces the object bytes (or side effect) of a single record.  Here,
// next is the address of the following instruction, required for pc-relative
// displacements.
func (a *Assembly) encode(i int, line *AssembledLine, next uint32) {
	rec := &a.records[i]
	// A bare label assembles to nothing.
	if rec.Mnemonic == "" {
		return
	}
	//
	if directive, ok := isa.LookupDirective(rec.BaseMnemonic()); ok {
		a.encodeDirective(i, directive, line)
		return
	}
	//
	spec, ok := isa.Lookup(rec.BaseMnemonic())
	if !ok {
		// Unknown mnemonics were reported and suppressed in pass 1.
		return
	}
	//
	switch {
	case spec.Format == isa.Format1:
		line.Bytes = []byte{spec.Opcode}
	case spec.Format == isa.Format2:
		if r1, r2, ok := a.analyzeRegisters(rec, spec); ok {
			line.Bytes = []byte{spec.Opcode, r1<<4 | r2}
		}
	case spec.Shape == isa.NoOperand:
		// RSUB: simple addressing with a zero field.
		decision := Decision{FlagN | FlagI, 0, 12}
		//
		if rec.Extended() {
			decision = Decision{FlagN | FlagI | FlagE, 0, 20}
		}
		//
		line.Bytes = packMemory(spec.Opcode, decision)
	default:
		if rec.Operand == "" {
			a.diagf(rec, MalformedOperand, rec.Span, "%s requires a memory operand", spec.Mnemonic)
			return
		}
		//
		if decision, ok := a.analyzeMemory(rec, next); ok {
			line.Bytes = packMemory(spec.Opcode, decision)
		}
	}
}

// encodeDirective emits a directive's literal bytes or applies its side
// effect.
func (a *Assembly) encodeDirective(i int, directive isa.Directive, line *AssembledLine) {
	rec := &a.records[i]
	//
	switch directive {
	case isa.Byte:
		// Already validated during pass-1 length accounting.
		if bytes, err := byteLiteral(rec.Operand); err == nil {
			line.Bytes = bytes
		}
	case isa.Word:
		bytes, err := wordLiteral(rec.Operand)
		//
		if err != nil {
			a.diagError(rec, err, rec.OperandSpan)
			return
		}
		//
		line.Bytes = bytes
	case isa.ResB, isa.ResW:
		// Reservations advance the location counter without emitting bytes.
		line.Reserved = a.lengths[i]
	case isa.Base:
		// BASE takes effect here rather than in pass 1, since its operand is
		// itself a symbol which must already be defined.
		if address, ok := a.symbols.Resolve(rec.Operand); ok {
			a.base = &address
		} else {
			a.diagf(rec, UndefinedSymbol, rec.OperandSpan,
				"BASE operand %q is not a defined symbol", rec.Operand)
		}
	case isa.NoBase:
		a.base = nil
	case isa.End:
		// An END operand names the first executable instruction.
		if rec.Operand != "" {
			if address, ok := a.symbols.Resolve(rec.Operand); ok {
				a.entry = address
			} else {
				a.diagf(rec, UndefinedSymbol, rec.OperandSpan,
					"END operand %q is not a defined symbol", rec.Operand)
			}
		}
	case isa.Start:
		// Origin was established during pass 1.
	}
}

// packMemory packs an opcode, flag set and field value into the format-3/4
// binary layout: the n,i bits replace the low two opcode bits, the x,b,p,e
// bits occupy the top nibble of the second byte, and the remaining 12 or 20
// bits hold the two's-complement field value.
func packMemory(opcode byte, decision Decision) []byte {
	b0 := opcode&0xFC | byte(decision.Flags>>4)
	//
	if decision.Width == 20 {
		value := uint32(decision.Value) & 0xFFFFF
		//
		return []byte{b0,
			byte(decision.Flags&0xF)<<4 | byte(value>>16),
			byte(value >> 8),
			byte(value)}
	}
	//
	value := uint32(decision.Value) & 0xFFF
	//
	return []byte{b0,
		byte(decision.Flags&0xF)<<4 | byte(value>>8),
		byte(value)}
}
