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
package isa

// Format identifies one of the four SIC/XE instruction formats.  The format
// determines both the assembled length of an instruction and its binary
// layout.
type Format uint8

const (
	// Format1 instructions are a single opcode byte.
	Format1 Format = iota + 1
	// Format2 instructions are an opcode byte followed by two register
	// nibbles.
	Format2
	// Format3 instructions carry a 12-bit displacement resolved against the
	// program counter or the base register.
	Format3
	// Format4 instructions carry a full 20-bit address and are selected by
	// prefixing a format-3 mnemonic with "+".
	Format4
)

// Length returns the number of bytes occupied by an instruction of this
// format.
func (f Format) Length() uint32 {
	return uint32(f)
}

// Shape describes the operand syntax an instruction expects.
type Shape uint8

const (
	// NoOperand is used by format-1 instructions, and by RSUB.
	NoOperand Shape = iota
	// Memory is a format-3/4 memory operand, possibly carrying addressing
	// markers (#, @, ",X").
	Memory
	// OneRegister is a single register name (e.g. CLEAR X).
	OneRegister
	// TwoRegisters is a register pair (e.g. RMO B,A).
	TwoRegisters
	// RegisterCount is a register and a shift count (SHIFTL, SHIFTR).
	RegisterCount
	// SmallConstant is a bare interrupt number (SVC).
	SmallConstant
)

// Spec is the static description of a single machine instruction: its format,
// base opcode byte and expected operand shape.
type Spec struct {
	// Mnemonic as written in source, without any "+" extension prefix.
	Mnemonic string
	// Instruction format (1, 2 or 3; format 4 arises from extension).
	Format Format
	// Base opcode byte, with its low two bits always zero.
	Opcode byte
	// Expected operand syntax.
	Shape Shape
}

// The full SIC/XE instruction set.  RSUB is the one format-3 instruction
// which takes no operand.
var specs = map[string]Spec{
	"ADD":    {"ADD", Format3, 0x18, Memory},
	"ADDF":   {"ADDF", Format3, 0x58, Memory},
	"ADDR":   {"ADDR", Format2, 0x90, TwoRegisters},
	"AND":    {"AND", Format3, 0x40, Memory},
	"CLEAR":  {"CLEAR", Format2, 0xB4, OneRegister},
	"COMP":   {"COMP", Format3, 0x28, Memory},
	"COMPF":  {"COMPF", Format3, 0x88, Memory},
	"COMPR":  {"COMPR", Format2, 0xA0, TwoRegisters},
	"DIV":    {"DIV", Format3, 0x24, Memory},
	"DIVF":   {"DIVF", Format3, 0x64, Memory},
	"DIVR":   {"DIVR", Format2, 0x9C, TwoRegisters},
	"FIX":    {"FIX", Format1, 0xC4, NoOperand},
	"FLOAT":  {"FLOAT", Format1, 0xC0, NoOperand},
	"HIO":    {"HIO", Format1, 0xF4, NoOperand},
	"J":      {"J", Format3, 0x3C, Memory},
	"JEQ":    {"JEQ", Format3, 0x30, Memory},
	"JGT":    {"JGT", Format3, 0x34, Memory},
	"JLT":    {"JLT", Format3, 0x38, Memory},
	"JSUB":   {"JSUB", Format3, 0x48, Memory},
	"LDA":    {"LDA", Format3, 0x00, Memory},
	"LDB":    {"LDB", Format3, 0x68, Memory},
	"LDCH":   {"LDCH", Format3, 0x50, Memory},
	"LDF":    {"LDF", Format3, 0x70, Memory},
	"LDL":    {"LDL", Format3, 0x08, Memory},
	"LDS":    {"LDS", Format3, 0x6C, Memory},
	"LDT":    {"LDT", Format3, 0x74, Memory},
	"LDX":    {"LDX", Format3, 0x04, Memory},
	"LPS":    {"LPS", Format3, 0xD0, Memory},
	"MUL":    {"MUL", Format3, 0x20, Memory},
	"MULF":   {"MULF", Format3, 0x60, Memory},
	"MULR":   {"MULR", Format2, 0x98, TwoRegisters},
	"NORM":   {"NORM", Format1, 0xC8, NoOperand},
	"OR":     {"OR", Format3, 0x44, Memory},
	"RD":     {"RD", Format3, 0xD8, Memory},
	"RMO":    {"RMO", Format2, 0xAC, TwoRegisters},
	"RSUB":   {"RSUB", Format3, 0x4C, NoOperand},
	"SHIFTL": {"SHIFTL", Format2, 0xA4, RegisterCount},
	"SHIFTR": {"SHIFTR", Format2, 0xA8, RegisterCount},
	"SIO":    {"SIO", Format1, 0xF0, NoOperand},
	"SSK":    {"SSK", Format3, 0xEC, Memory},
	"STA":    {"STA", Format3, 0x0C, Memory},
	"STB":    {"STB", Format3, 0x78, Memory},
	"STCH":   {"STCH", Format3, 0x54, Memory},
	"STF":    {"STF", Format3, 0x80, Memory},
	"STI":    {"STI", Format3, 0xD4, Memory},
	"STL":    {"STL", Format3, 0x14, Memory},
	"STS":    {"STS", Format3, 0x7C, Memory},
	"STSW":   {"STSW", Format3, 0xE8, Memory},
	"STT":    {"STT", Format3, 0x84, Memory},
	"STX":    {"STX", Format3, 0x10, Memory},
	"SUB":    {"SUB", Format3, 0x1C, Memory},
	"SUBF":   {"SUBF", Format3, 0x5C, Memory},
	"SUBR":   {"SUBR", Format2, 0x94, TwoRegisters},
	"SVC":    {"SVC", Format2, 0xB0, SmallConstant},
	"TD":     {"TD", Format3, 0xE0, Memory},
	"TIO":    {"TIO", Format1, 0xF8, NoOperand},
	"TIX":    {"TIX", Format3, 0x2C, Memory},
	"TIXR":   {"TIXR", Format2, 0xB8, OneRegister},
	"WD":     {"WD", Format3, 0xDC, Memory},
}

// Lookup returns the instruction specification for a given mnemonic (without
// any "+" extension prefix), or false if the mnemonic names no machine
// instruction.
func Lookup(mnemonic string) (Spec, bool) {
	spec, ok := specs[mnemonic]
	return spec, ok
}

// Directive identifies an assembler directive.  Directives occupy zero or
// more bytes of the program but never produce instruction words.
type Directive uint8

const (
	// Start establishes the program name and origin address.
	Start Directive = iota
	// End terminates assembly and (optionally) names the entry point.
	End
	// Base declares the value held in the base register, enabling
	// base-relative addressing.
	Base
	// NoBase revokes a previous Base declaration.
	NoBase
	// ResW reserves a number of words.
	ResW
	// ResB reserves a number of bytes.
	ResB
	// Byte assembles a byte literal.
	Byte
	// Word assembles a one-word constant.
	Word
)

var directives = map[string]Directive{
	"START":  Start,
	"END":    End,
	"BASE":   Base,
	"NOBASE": NoBase,
	"RESW":   ResW,
	"RESB":   ResB,
	"BYTE":   Byte,
	"WORD":   Word,
}

// LookupDirective returns the directive named by a given mnemonic, or false
// if the mnemonic names no directive.
func LookupDirective(mnemonic string) (Directive, bool) {
	d, ok := directives[mnemonic]
	return d, ok
}
