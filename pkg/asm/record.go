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

	"github.com/sicxe/sicasm/pkg/util/source"
)

// SourceRecord is one structured assembly line: an optional label, a mnemonic
// (retaining any "+" extension prefix) and the raw operand text.  Records are
// produced once by the lexer and consumed by both passes, never mutated.
type SourceRecord struct {
	// Source line number, counting from 1.
	Line int
	// Label defined on this line, or "" if none.
	Label string
	// Mnemonic, including any "+" extension prefix.
	Mnemonic string
	// Raw operand text, or "" if none.
	Operand string
	// Span of the whole line within the source file.
	Span source.Span
	// Span of the operand text within the source file, for precise error
	// highlighting.  Equal to Span when there is no operand.
	OperandSpan source.Span
}

// Extended reports whether this record requests the extended (format-4) form
// of its instruction.
func (p *SourceRecord) Extended() bool {
	return strings.HasPrefix(p.Mnemonic, "+")
}

// BaseMnemonic returns the mnemonic with any "+" extension prefix stripped.
func (p *SourceRecord) BaseMnemonic() string {
	return strings.TrimPrefix(p.Mnemonic, "+")
}
