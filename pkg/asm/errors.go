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
	"github.com/sicxe/sicasm/pkg/util/source"
)

// ErrorKind classifies a non-fatal assembly error.  Every diagnostic carries
// exactly one kind, allowing callers (and tests) to react to the condition
// without matching on message text.
type ErrorKind uint8

const (
	// UnknownMnemonic indicates a mnemonic naming neither an instruction nor
	// a directive.
	UnknownMnemonic ErrorKind = iota
	// IllegalExtension indicates a "+" prefix on a mnemonic which is not a
	// format-3 instruction.
	IllegalExtension
	// DuplicateSymbol indicates a label defined more than once.  The first
	// binding is retained.
	DuplicateSymbol
	// UndefinedSymbol indicates an operand referencing a symbol which is
	// never defined.
	UndefinedSymbol
	// InvalidReserveOperand indicates a RESB/RESW whose operand is not a
	// repeat count (e.g. a character literal).
	InvalidReserveOperand
	// SvcOperandOutOfRange indicates an SVC operand outside [0,16).
	SvcOperandOutOfRange
	// RegisterOutOfRange indicates a register operand which does not name a
	// register in [0,16).
	RegisterOutOfRange
	// OperandOutOfRange indicates a shift count outside (0,17), a register
	// outside [0,16), an immediate constant too wide for its field, or a
	// reservation larger than the address space.
	OperandOutOfRange
	// NoBaseDeclared indicates base-relative addressing attempted without a
	// prior BASE declaration.
	NoBaseDeclared
	// AddressingModeUnavailable indicates a format-3 reference which fits
	// neither the pc-relative nor the base-relative displacement range.
	AddressingModeUnavailable
	// IndexedWithImmediateOrIndirect indicates ",X" combined with "#" or "@".
	IndexedWithImmediateOrIndirect
	// MalformedOperand indicates operand text which cannot be parsed at all
	// (bad literal syntax, missing comma, etc).
	MalformedOperand
)

// String returns a short name for this error kind, as used when reporting
// diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case UnknownMnemonic:
		return "unknown mnemonic"
	case IllegalExtension:
		return "illegal extension"
	case DuplicateSymbol:
		return "duplicate symbol"
	case UndefinedSymbol:
		return "undefined symbol"
	case InvalidReserveOperand:
		return "invalid reserve operand"
	case SvcOperandOutOfRange:
		return "SVC operand out of range"
	case RegisterOutOfRange:
		return "register out of range"
	case OperandOutOfRange:
		return "operand out of range"
	case NoBaseDeclared:
		return "no base declared"
	case AddressingModeUnavailable:
		return "addressing mode unavailable"
	case IndexedWithImmediateOrIndirect:
		return "indexed with immediate or indirect"
	case MalformedOperand:
		return "malformed operand"
	default:
		return "unknown error"
	}
}

// Diagnostic is a non-fatal assembly error attributed to a single source
// line.  Diagnostics are accumulated across both passes and never halt the
// run; the offending line simply produces no object code.
type Diagnostic struct {
	// Classification of this error.
	Kind ErrorKind
	// Source line (counting from 1) against which this error is reported.
	Line int
	// Underlying syntax error, retaining the source span for highlighting.
	Err *source.SyntaxError
}

// Message returns the human-readable message of this diagnostic.
func (p *Diagnostic) Message() string {
	return p.Err.Message()
}

// Error implements the error interface.
func (p *Diagnostic) Error() string {
	return p.Err.Error()
}

// kindError is an internal error value which carries an ErrorKind, allowing
// helper functions to signal failures whose classification the caller simply
// forwards into a diagnostic.
type kindError struct {
	kind ErrorKind
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}
