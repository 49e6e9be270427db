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
	"strings"

	"github.com/sicxe/sicasm/pkg/asm/isa"
)

// Flags holds the six SIC/XE addressing-mode bits, in the order they are
// packed into an instruction: n (indirect), i (immediate), x (indexed),
// b (base-relative), p (pc-relative), e (extended).  Simple addressing sets
// both n and i.
type Flags uint8

const (
	// FlagE marks the extended (format-4) form.
	FlagE Flags = 1 << iota
	// FlagP marks pc-relative addressing.
	FlagP
	// FlagB marks base-relative addressing.
	FlagB
	// FlagX marks indexed addressing.
	FlagX
	// FlagI marks immediate addressing.
	FlagI
	// FlagN marks indirect addressing.
	FlagN
)

// Decision describes how a single memory operand is to be addressed: the flag
// bits to pack, and the value of the displacement/address field together with
// its width in bits (12 for format 3, 20 for format 4).
type Decision struct {
	Flags Flags
	Value int32
	Width uint8
}

// addrMode is the addressing mode requested by an operand's prefix marker.
type addrMode uint8

const (
	modeSimple addrMode = iota
	modeImmediate
	modeIndirect
)

// memoryOperand is the parsed syntax of a format-3/4 memory operand.
type memoryOperand struct {
	mode    addrMode
	indexed bool
	// Symbol name or numeric constant, markers stripped.
	expr string
}

// parseMemoryOperand detects the "#"/"@" prefix markers and the ",X" suffix
// marker of a memory operand.
func parseMemoryOperand(text string) memoryOperand {
	op := memoryOperand{mode: modeSimple, expr: text}
	//
	if strings.HasSuffix(op.expr, ",X") {
		op.indexed = true
		op.expr = strings.TrimSuffix(op.expr, ",X")
	}
	//
	switch {
	case strings.HasPrefix(op.expr, "#"):
		op.mode = modeImmediate
		op.expr = op.expr[1:]
	case strings.HasPrefix(op.expr, "@"):
		op.mode = modeIndirect
		op.expr = op.expr[1:]
	}
	//
	return op
}

// analyzeMemory selects the addressing mode for a format-3/4 memory operand.
// For format 3, pc-relative addressing is preferred, falling back to
// base-relative when the pc-relative displacement does not fit; format 4
// always takes the target address directly.  Here, next is the address of the
// instruction following this one, against which pc-relative displacements are
// computed.  Failures are reported as diagnostics and signalled by a false
// return.
func (a *Assembly) analyzeMemory(rec *SourceRecord, next uint32) (Decision, bool) {
	var (
		op       = parseMemoryOperand(rec.Operand)
		extended = rec.Extended()
		flags    Flags
		width    uint8 = 12
	)
	// Indexing is only legal with simple addressing.
	if op.indexed && op.mode != modeSimple {
		a.diagf(rec, IndexedWithImmediateOrIndirect, rec.OperandSpan,
			"indexed addressing is used with immediate or indirect addressing")
		//
		return Decision{}, false
	}
	//
	switch op.mode {
	case modeImmediate:
		flags |= FlagI
	case modeIndirect:
		flags |= FlagN
	default:
		flags |= FlagN | FlagI
	}
	//
	if op.indexed {
		flags |= FlagX
	}
	//
	if extended {
		flags |= FlagE
		width = 20
	}
	// An immediate constant bypasses the symbol table and occupies the field
	// directly.
	if op.mode == modeImmediate && !a.symbols.Has(op.expr) {
		value, err := parseNumber(op.expr)
		//
		if err != nil {
			a.diagf(rec, UndefinedSymbol, rec.OperandSpan, "undefined symbol %q", op.expr)
			return Decision{}, false
		}
		//
		if value < -(1<<(width-1)) || value >= 1<<width {
			a.diagf(rec, OperandOutOfRange, rec.OperandSpan,
				"immediate operand %d does not fit in %d bits", value, width)
			//
			return Decision{}, false
		}
		//
		return Decision{flags, int32(value), width}, true
	}
	// Resolve the target address; bare numbers are absolute addresses.
	target, ok := a.symbols.Resolve(op.expr)
	//
	if !ok {
		if value, err := parseNumber(op.expr); err == nil && value >= 0 && value < addressSpace {
			target = uint32(value)
		} else {
			a.diagf(rec, UndefinedSymbol, rec.OperandSpan, "undefined symbol %q", op.expr)
			return Decision{}, false
		}
	}
	// Format 4 carries the full address; no relative computation.
	if extended {
		return Decision{flags, int32(target), 20}, true
	}
	// Try pc-relative first (conventional assembler behaviour when both
	// would fit).
	disp := int64(target) - int64(next)
	//
	if disp >= -2048 && disp <= 2047 {
		return Decision{flags | FlagP, int32(disp), 12}, true
	}
	// Fall back to base-relative.
	if a.base == nil {
		a.diagf(rec, NoBaseDeclared, rec.OperandSpan,
			"no BASE declared whilst attempting base-relative addressing")
		//
		return Decision{}, false
	}
	//
	disp = int64(target) - int64(*a.base)
	//
	if disp >= 0 && disp <= 4095 {
		return Decision{flags | FlagB, int32(disp), 12}, true
	}
	//
	a.diagf(rec, AddressingModeUnavailable, rec.OperandSpan,
		"cannot use PC or base relative addressing")
	//
	return Decision{}, false
}

// analyzeRegisters validates the operands of a format-2 instruction,
// returning the two nibbles to pack after the opcode.
func (a *Assembly) analyzeRegisters(rec *SourceRecord, spec isa.Spec) (byte, byte, bool) {
	switch spec.Shape {
	case isa.OneRegister:
		r, ok := a.register(rec, rec.Operand)
		return r, 0, ok
	case isa.TwoRegisters:
		first, second, found := strings.Cut(rec.Operand, ",")
		//
		if !found {
			a.diagf(rec, MalformedOperand, rec.OperandSpan,
				"%s requires two register operands", spec.Mnemonic)
			//
			return 0, 0, false
		}
		//
		r1, ok := a.register(rec, first)
		if !ok {
			return 0, 0, false
		}
		//
		r2, ok := a.register(rec, second)
		//
		return r1, r2, ok
	case isa.RegisterCount:
		first, second, found := strings.Cut(rec.Operand, ",")
		//
		if !found {
			a.diagf(rec, MalformedOperand, rec.OperandSpan,
				"%s requires a register and a count", spec.Mnemonic)
			//
			return 0, 0, false
		}
		//
		r, rok := isa.RegisterNumber(first)
		count, err := parseNumber(second)
		// Note the asymmetric bounds: the count excludes zero, the register
		// includes it.
		if !rok || err != nil || count <= 0 || count >= 17 {
			a.diagf(rec, OperandOutOfRange, rec.OperandSpan,
				"%s operand n must satisfy 0 < n < 17 and operand r must satisfy 0 <= r < 16", spec.Mnemonic)
			//
			return 0, 0, false
		}
		// Shift counts are encoded off by one.
		return r, byte(count - 1), true
	case isa.SmallConstant:
		value, err := parseNumber(rec.Operand)
		//
		if err != nil || value < 0 || value >= 16 {
			a.diagf(rec, SvcOperandOutOfRange, rec.OperandSpan,
				"%s operand n must satisfy 0 <= n < 16", spec.Mnemonic)
			//
			return 0, 0, false
		}
		//
		return byte(value), 0, true
	default:
		return 0, 0, true
	}
}

// register resolves a register name, reporting a diagnostic when it does not
// name one of the sixteen registers.
func (a *Assembly) register(rec *SourceRecord, name string) (byte, bool) {
	if r, ok := isa.RegisterNumber(name); ok {
		return r, true
	}
	//
	a.diagf(rec, RegisterOutOfRange, rec.OperandSpan,
		"operand %q does not name a register in [0,16)", name)
	//
	return 0, false
}
