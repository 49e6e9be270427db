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
	"strconv"
	"strings"

	"github.com/japanoise/numparse"
)

// wordSize is the SIC/XE word size in bytes.
const wordSize = 3

// maxWord is the largest value representable in a signed SIC/XE word.
const maxWord = 1<<23 - 1

// minWord is the smallest value representable in a signed SIC/XE word.
const minWord = -(1 << 23)

// parseNumber parses a (possibly negative) numeric operand.
func parseNumber(text string) (int64, error) {
	var negative bool
	//
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}
	//
	n, err := numparse.UNumParse(text)
	if err != nil {
		return 0, err
	} else if n > maxWord+1 {
		return 0, fmt.Errorf("numeric operand %d too large", n)
	}
	//
	value := int64(n)
	if negative {
		value = -value
	}
	//
	return value, nil
}

// isLiteral reports whether operand text is a character or hexadecimal
// literal (C'...' or X'...').
func isLiteral(text string) bool {
	return strings.HasPrefix(text, "C'") || strings.HasPrefix(text, "X'")
}

// literalBytes converts a C'...' or X'...' literal into the bytes it denotes.
// Hexadecimal literals with an odd number of digits are padded with a leading
// zero.
func literalBytes(text string) ([]byte, error) {
	if len(text) < 3 || !strings.HasSuffix(text[2:], "'") {
		return nil, &kindError{MalformedOperand, fmt.Sprintf("malformed literal %q", text)}
	}
	// Strip marker and enclosing quotes.
	body := text[2 : len(text)-1]
	//
	if text[0] == 'C' {
		return []byte(body), nil
	}
	// Hexadecimal literal.
	if len(body)%2 == 1 {
		body = "0" + body
	}
	//
	bytes := make([]byte, len(body)/2)
	//
	for i := range bytes {
		b, err := strconv.ParseUint(body[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, &kindError{MalformedOperand, fmt.Sprintf("malformed hex literal %q", text)}
		}
		//
		bytes[i] = byte(b)
	}
	//
	return bytes, nil
}

// byteLiteral encodes the operand of a BYTE directive.  Character and
// hexadecimal literals contribute their own bytes; a plain number contributes
// a single byte.
func byteLiteral(operand string) ([]byte, error) {
	if isLiteral(operand) {
		return literalBytes(operand)
	}
	//
	n, err := parseNumber(operand)
	if err != nil {
		return nil, &kindError{MalformedOperand, fmt.Sprintf("malformed BYTE operand %q", operand)}
	} else if n < 0 || n > 255 {
		return nil, &kindError{OperandOutOfRange, fmt.Sprintf("BYTE operand %d outside [0,256)", n)}
	}
	//
	return []byte{byte(n)}, nil
}

// wordLiteral encodes the operand of a WORD directive into exactly one word.
// Numbers are encoded in two's complement; character and hexadecimal literals
// are left-padded with zero bytes.
func wordLiteral(operand string) ([]byte, error) {
	if isLiteral(operand) {
		bytes, err := literalBytes(operand)
		//
		if err != nil {
			return nil, err
		} else if len(bytes) > wordSize {
			return nil, &kindError{OperandOutOfRange, fmt.Sprintf("WORD literal %q wider than one word", operand)}
		}
		//
		word := make([]byte, wordSize)
		copy(word[wordSize-len(bytes):], bytes)
		//
		return word, nil
	}
	//
	n, err := parseNumber(operand)
	if err != nil {
		return nil, &kindError{MalformedOperand, fmt.Sprintf("malformed WORD operand %q", operand)}
	} else if n < minWord || n > maxWord {
		return nil, &kindError{OperandOutOfRange, fmt.Sprintf("WORD operand %d outside signed word range", n)}
	}
	//
	v := uint32(n) & 0xFFFFFF
	//
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

// reserveCount parses the repeat count of a RESB/RESW directive.  Counts may
// be decimal numbers or X'...' hexadecimal literals; character literals have
// no meaning as a repeat count and are rejected.  The count is bounded in
// 64-bit arithmetic before narrowing, so that the reservation's byte size can
// never wrap the 32-bit location counter.
func reserveCount(mnemonic, operand string) (uint32, error) {
	var count uint64
	//
	switch {
	case strings.HasPrefix(operand, "C'"):
		return 0, &kindError{InvalidReserveOperand,
			fmt.Sprintf("%s does not support character operands", mnemonic)}
	case strings.HasPrefix(operand, "X'"):
		bytes, err := literalBytes(operand)
		if err != nil || len(bytes) > 4 {
			return 0, &kindError{InvalidReserveOperand,
				fmt.Sprintf("%s given malformed hex count %q", mnemonic, operand)}
		}
		// Interpret literal bytes as a big-endian count.
		for _, b := range bytes {
			count = count<<8 | uint64(b)
		}
	default:
		n, err := numparse.UNumParse(operand)
		if err != nil {
			return 0, &kindError{InvalidReserveOperand,
				fmt.Sprintf("%s requires a numeric count, got %q", mnemonic, operand)}
		}
		//
		count = n
	}
	// A reservation larger than the machine's memory can never assemble.
	size := count
	//
	if mnemonic == "RESW" {
		size *= wordSize
	}
	//
	if size >= addressSpace {
		return 0, &kindError{OperandOutOfRange,
			fmt.Sprintf("%s count %d exceeds the address space", mnemonic, count)}
	}
	//
	return uint32(count), nil
}
