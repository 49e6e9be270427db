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
	"unicode"
	"unicode/utf8"

	"github.com/sicxe/sicasm/pkg/util/source"
)

// field is a whitespace-delimited token within a line, along with its rune
// offset and rune length within that line.  Offsets are kept in runes, never
// bytes, since source file spans index runes.
type field struct {
	text   string
	offset int
	length int
}

// Lex splits a source file into structured records, one per significant line.
// Comment lines begin with '.' and are dropped, as are blank lines.  A line
// defines a label iff its first character is alphabetic; otherwise the first
// field is the mnemonic.  Anything after the operand field is treated as an
// inline comment and ignored.
func Lex(srcfile *source.File) []SourceRecord {
	var records []SourceRecord
	//
	for n := 1; n <= srcfile.LineCount(); n++ {
		var (
			line   = srcfile.Line(n)
			text   = line.String()
			fields = splitFields(text)
			record = SourceRecord{Line: n, Span: line.Span()}
		)
		// Skip blank lines and comment lines (which may be indented).
		if len(fields) == 0 || fields[0].text[0] == '.' {
			continue
		}
		// A line starting with an alphabetic character defines a label.
		if first, _ := utf8.DecodeRuneInString(text); unicode.IsLetter(first) {
			record.Label = fields[0].text
			fields = fields[1:]
		}
		//
		if len(fields) > 0 {
			record.Mnemonic = fields[0].text
		}
		// Default the operand span to the whole line.
		record.OperandSpan = record.Span
		//
		if len(fields) > 1 {
			record.Operand = fields[1].text
			record.OperandSpan = source.NewSpan(
				line.Start()+fields[1].offset,
				line.Start()+fields[1].offset+fields[1].length)
		}
		//
		records = append(records, record)
	}
	//
	return records
}

// Split a line into its whitespace-delimited fields, retaining the rune
// offset of each field for error highlighting.
func splitFields(text string) []field {
	var (
		fields []field
		runes  = []rune(text)
		start  = -1
	)
	//
	for i, c := range runes {
		if c == ' ' || c == '\t' {
			if start >= 0 {
				fields = append(fields, field{string(runes[start:i]), start, i - start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	//
	if start >= 0 {
		fields = append(fields, field{string(runes[start:]), start, len(runes) - start})
	}
	//
	return fields
}
