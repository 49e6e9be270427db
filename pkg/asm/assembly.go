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

// Package asm implements a two-pass SIC/XE assembler.  Pass 1 assigns an
// address to every source line and builds the symbol table; pass 2 resolves
// operands against the completed table and encodes each instruction into its
// 1-6 byte binary layout.
package asm

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/sicxe/sicasm/pkg/util/source"
)

// Assembly is the mutable state of a single assembly run.  Each run owns its
// own state; assembling several programs concurrently requires one Assembly
// per program.
type Assembly struct {
	srcfile *source.File
	// Structured source lines, in order.
	records []SourceRecord
	// Per-record byte length, fixed during pass 1.  Pass 2 re-derives every
	// address by walking these lengths from the origin.
	lengths []uint32
	// Marks records whose encoding was suppressed by a pass-1 error.
	suppressed []bool
	// Marks records carrying a rejected duplicate label definition.
	duplicate []bool
	// Symbol table, completed by pass 1.
	symbols *SymbolTable
	// Program name, taken from the label of the START directive.
	name string
	// Program origin, taken from the operand of the START directive.
	start uint32
	// Total program length in bytes.
	length uint32
	// Entry point, from the operand of the END directive.
	entry uint32
	// Current base register declaration, or nil when no BASE is active.
	base *uint32
	// Diagnostics accumulated across both passes.
	diags []Diagnostic
}

// AssembledLine is the outcome of assembling a single source record: its
// resolved address, its object bytes (if any) and any diagnostics reported
// against it.
type AssembledLine struct {
	// Originating source record.
	Record SourceRecord
	// Address assigned to this line.
	Address uint32
	// Object bytes produced by this line, or nil for directives, reservations
	// and failed lines.
	Bytes []byte
	// Number of bytes reserved (but not emitted) by RESB/RESW.
	Reserved uint32
	// Diagnostics reported against this line.
	Diagnostics []Diagnostic
}

// Program is the completed result of an assembly run.
type Program struct {
	// Program name, from the label of the START directive.
	Name string
	// Origin address.
	Start uint32
	// Total length in bytes.
	Length uint32
	// Entry point address.
	Entry uint32
	// All assembled lines, in source order.
	Lines []AssembledLine
	// The completed symbol table.
	Symbols *SymbolTable
	// All diagnostics, in order of detection.
	Diagnostics []Diagnostic
}

// Assemble runs both passes over a given source file.  Per-line errors are
// collected as diagnostics on the resulting program; only a fatal condition
// (such as missing program bounds) yields an error, in which case no program
// is produced.
func Assemble(srcfile *source.File) (*Program, error) {
	assembly := &Assembly{srcfile: srcfile, symbols: NewSymbolTable()}
	assembly.records = Lex(srcfile)
	//
	if err := assembly.pass1(); err != nil {
		return nil, err
	}
	//
	log.Debugf("pass 1 complete: %d records, %d symbols, %d bytes",
		len(assembly.records), assembly.symbols.Count(), assembly.length)
	//
	lines := assembly.pass2()
	//
	log.Debugf("pass 2 complete: %d diagnostics", len(assembly.diags))
	// Attribute diagnostics to their lines.
	for i := range lines {
		for _, d := range assembly.diags {
			if d.Line == lines[i].Record.Line {
				lines[i].Diagnostics = append(lines[i].Diagnostics, d)
			}
		}
	}
	//
	return &Program{
		Name:        assembly.name,
		Start:       assembly.start,
		Length:      assembly.length,
		Entry:       assembly.entry,
		Lines:       lines,
		Symbols:     assembly.symbols,
		Diagnostics: assembly.diags,
	}, nil
}

// Report a diagnostic of a given kind against a given record.
func (a *Assembly) diagf(rec *SourceRecord, kind ErrorKind, span source.Span, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	//
	log.Debugf("line %d: %s: %s", rec.Line, kind, msg)
	//
	a.diags = append(a.diags, Diagnostic{kind, rec.Line, a.srcfile.SyntaxError(span, msg)})
}

// Report an error value as a diagnostic, preserving its kind when it carries
// one.
func (a *Assembly) diagError(rec *SourceRecord, err error, span source.Span) {
	if ke, ok := err.(*kindError); ok {
		a.diagf(rec, ke.kind, span, "%s", ke.msg)
		return
	}
	//
	a.diagf(rec, MalformedOperand, span, "%s", err.Error())
}
