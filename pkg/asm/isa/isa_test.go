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

import "testing"

func Test_Lookup(t *testing.T) {
	cases := []struct {
		mnemonic string
		format   Format
		opcode   byte
		shape    Shape
	}{
		{"LDA", Format3, 0x00, Memory},
		{"STA", Format3, 0x0C, Memory},
		{"STL", Format3, 0x14, Memory},
		{"J", Format3, 0x3C, Memory},
		{"JSUB", Format3, 0x48, Memory},
		{"RSUB", Format3, 0x4C, NoOperand},
		{"RMO", Format2, 0xAC, TwoRegisters},
		{"COMPR", Format2, 0xA0, TwoRegisters},
		{"CLEAR", Format2, 0xB4, OneRegister},
		{"TIXR", Format2, 0xB8, OneRegister},
		{"SHIFTL", Format2, 0xA4, RegisterCount},
		{"SHIFTR", Format2, 0xA8, RegisterCount},
		{"SVC", Format2, 0xB0, SmallConstant},
		{"FIX", Format1, 0xC4, NoOperand},
		{"TIO", Format1, 0xF8, NoOperand},
	}
	//
	for _, c := range cases {
		spec, ok := Lookup(c.mnemonic)
		//
		if !ok {
			t.Fatalf("missing instruction %s", c.mnemonic)
		} else if spec.Format != c.format {
			t.Errorf("%s: format %d, expected %d", c.mnemonic, spec.Format, c.format)
		} else if spec.Opcode != c.opcode {
			t.Errorf("%s: opcode %#x, expected %#x", c.mnemonic, spec.Opcode, c.opcode)
		} else if spec.Shape != c.shape {
			t.Errorf("%s: shape %d, expected %d", c.mnemonic, spec.Shape, c.shape)
		}
	}
}

func Test_Lookup_Unknown(t *testing.T) {
	if _, ok := Lookup("FROB"); ok {
		t.Error("FROB should not name an instruction")
	}
	// Directives are not instructions.
	if _, ok := Lookup("START"); ok {
		t.Error("START should not name an instruction")
	}
}

func Test_LookupDirective(t *testing.T) {
	cases := map[string]Directive{
		"START":  Start,
		"END":    End,
		"BASE":   Base,
		"NOBASE": NoBase,
		"RESW":   ResW,
		"RESB":   ResB,
		"BYTE":   Byte,
		"WORD":   Word,
	}
	//
	for mnemonic, expected := range cases {
		if directive, ok := LookupDirective(mnemonic); !ok {
			t.Fatalf("missing directive %s", mnemonic)
		} else if directive != expected {
			t.Errorf("%s: directive %d, expected %d", mnemonic, directive, expected)
		}
	}
	//
	if _, ok := LookupDirective("LDA"); ok {
		t.Error("LDA should not name a directive")
	}
}

func Test_FormatLength(t *testing.T) {
	lengths := map[Format]uint32{Format1: 1, Format2: 2, Format3: 3, Format4: 4}
	//
	for format, expected := range lengths {
		if length := format.Length(); length != expected {
			t.Errorf("format %d: length %d, expected %d", format, length, expected)
		}
	}
}

func Test_RegisterNumber(t *testing.T) {
	registers := map[string]uint8{
		"A": 0, "X": 1, "L": 2, "B": 3, "S": 4, "T": 5, "F": 6, "PC": 8, "SW": 9,
	}
	//
	for name, expected := range registers {
		if number, ok := RegisterNumber(name); !ok {
			t.Fatalf("missing register %s", name)
		} else if number != expected {
			t.Errorf("%s: register %d, expected %d", name, number, expected)
		}
	}
	//
	if _, ok := RegisterNumber("Q"); ok {
		t.Error("Q should not name a register")
	}
}
