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

import "testing"

func Test_ParseMemoryOperand(t *testing.T) {
	cases := []struct {
		text    string
		mode    addrMode
		indexed bool
		expr    string
	}{
		{"ALPHA", modeSimple, false, "ALPHA"},
		{"#3", modeImmediate, false, "3"},
		{"#LENGTH", modeImmediate, false, "LENGTH"},
		{"@RETADR", modeIndirect, false, "RETADR"},
		{"BUFFER,X", modeSimple, true, "BUFFER"},
		{"#BUFFER,X", modeImmediate, true, "BUFFER"},
		{"@BUFFER,X", modeIndirect, true, "BUFFER"},
	}
	//
	for _, c := range cases {
		op := parseMemoryOperand(c.text)
		//
		if op.mode != c.mode || op.indexed != c.indexed || op.expr != c.expr {
			t.Errorf("%q: got {%d %v %q}, expected {%d %v %q}", c.text,
				op.mode, op.indexed, op.expr, c.mode, c.indexed, c.expr)
		}
	}
}

func Test_PackMemory(t *testing.T) {
	cases := []struct {
		opcode   byte
		decision Decision
		expected []byte
	}{
		// LDA #3
		{0x00, Decision{FlagI, 3, 12}, []byte{0x01, 0x00, 0x03}},
		// STA with zero pc-relative displacement
		{0x0C, Decision{FlagN | FlagI | FlagP, 0, 12}, []byte{0x0F, 0x20, 0x00}},
		// J with negative pc-relative displacement
		{0x3C, Decision{FlagN | FlagI | FlagP, -6, 12}, []byte{0x3F, 0x2F, 0xFA}},
		// STCH indexed
		{0x54, Decision{FlagN | FlagI | FlagX | FlagP, 0, 12}, []byte{0x57, 0xA0, 0x00}},
		// +JSUB absolute
		{0x48, Decision{FlagN | FlagI | FlagE, 0x1036, 20}, []byte{0x4B, 0x10, 0x10, 0x36}},
	}
	//
	for _, c := range cases {
		bytes := packMemory(c.opcode, c.decision)
		//
		if len(bytes) != len(c.expected) {
			t.Errorf("opcode %#x: %d bytes, expected %d", c.opcode, len(bytes), len(c.expected))
			continue
		}
		//
		for i := range bytes {
			if bytes[i] != c.expected[i] {
				t.Errorf("opcode %#x: byte %d is %#x, expected %#x", c.opcode, i, bytes[i], c.expected[i])
			}
		}
	}
}

func Test_Literals(t *testing.T) {
	// BYTE C'EOF'
	if bytes, err := byteLiteral("C'EOF'"); err != nil {
		t.Error(err)
	} else if string(bytes) != "EOF" {
		t.Errorf("C'EOF' encoded as %x", bytes)
	}
	// BYTE X'F1'
	if bytes, err := byteLiteral("X'F1'"); err != nil || len(bytes) != 1 || bytes[0] != 0xF1 {
		t.Errorf("X'F1' encoded as %x (%v)", bytes, err)
	}
	// Odd-length hex literals gain a leading zero.
	if bytes, err := byteLiteral("X'ABC'"); err != nil || len(bytes) != 2 || bytes[0] != 0x0A || bytes[1] != 0xBC {
		t.Errorf("X'ABC' encoded as %x (%v)", bytes, err)
	}
	// WORD -1
	if bytes, err := wordLiteral("-1"); err != nil || len(bytes) != 3 ||
		bytes[0] != 0xFF || bytes[1] != 0xFF || bytes[2] != 0xFF {
		t.Errorf("-1 encoded as %x (%v)", bytes, err)
	}
	// WORD 5
	if bytes, err := wordLiteral("5"); err != nil || len(bytes) != 3 ||
		bytes[0] != 0 || bytes[1] != 0 || bytes[2] != 5 {
		t.Errorf("5 encoded as %x (%v)", bytes, err)
	}
}

func Test_ReserveCount(t *testing.T) {
	if count, err := reserveCount("RESB", "10"); err != nil || count != 10 {
		t.Errorf("RESB 10: %d (%v)", count, err)
	}
	// Hex counts are permitted.
	if count, err := reserveCount("RESB", "X'10'"); err != nil || count != 16 {
		t.Errorf("RESB X'10': %d (%v)", count, err)
	}
	// Character counts are not.
	if _, err := reserveCount("RESW", "C'AB'"); err == nil {
		t.Error("RESW C'AB' should be rejected")
	} else if ke, ok := err.(*kindError); !ok || ke.kind != InvalidReserveOperand {
		t.Errorf("RESW C'AB' rejected with %v", err)
	}
	// Symbolic counts are not.
	if _, err := reserveCount("RESW", "ABC"); err == nil {
		t.Error("RESW ABC should be rejected")
	}
	// Byte sizes are bounded by the address space, before any narrowing.
	if count, err := reserveCount("RESB", "1048575"); err != nil || count != 1048575 {
		t.Errorf("RESB 1048575: %d (%v)", count, err)
	}
	//
	if _, err := reserveCount("RESB", "1048576"); err == nil {
		t.Error("RESB 1048576 should be rejected")
	} else if ke, ok := err.(*kindError); !ok || ke.kind != OperandOutOfRange {
		t.Errorf("RESB 1048576 rejected with %v", err)
	}
	// 1431655936 words wraps to 0x200 bytes in 32-bit arithmetic.
	if _, err := reserveCount("RESW", "1431655936"); err == nil {
		t.Error("RESW 1431655936 should be rejected")
	}
}
