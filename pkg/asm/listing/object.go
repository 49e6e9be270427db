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
package listing

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/sicxe/sicasm/pkg/asm"
)

// maxTextBytes is the largest number of object bytes carried by a single text
// record.
const maxTextBytes = 30

// WriteObject serialises a program into the standard SIC/XE object program
// format: one header record, text records of at most 30 bytes broken at
// reservations, and one end record naming the entry point.
func WriteObject(w io.Writer, program *asm.Program) error {
	name := program.Name
	if len(name) > 6 {
		name = name[:6]
	}
	//
	if _, err := fmt.Fprintf(w, "H%-6s%06X%06X\n", name, program.Start, program.Length); err != nil {
		return err
	}
	//
	text := textRecordWriter{w: w}
	//
	for _, line := range program.Lines {
		// A reservation leaves a gap in the object program, closing any open
		// text record.
		if line.Reserved > 0 {
			if err := text.flush(); err != nil {
				return err
			}
			//
			continue
		}
		//
		if err := text.append(line.Address, line.Bytes); err != nil {
			return err
		}
	}
	//
	if err := text.flush(); err != nil {
		return err
	}
	//
	_, err := fmt.Fprintf(w, "E%06X\n", program.Entry)
	//
	return err
}

// textRecordWriter accumulates contiguous object bytes and emits them as text
// records.
type textRecordWriter struct {
	w io.Writer
	// Address of the first byte in the buffer.
	address uint32
	buffer  []byte
}

// Append the bytes of one line, emitting records whenever the buffer fills.
func (p *textRecordWriter) append(address uint32, bytes []byte) error {
	if len(bytes) == 0 {
		return nil
	}
	//
	if len(p.buffer) == 0 {
		p.address = address
	}
	//
	p.buffer = append(p.buffer, bytes...)
	//
	for len(p.buffer) >= maxTextBytes {
		if err := p.emit(p.buffer[:maxTextBytes]); err != nil {
			return err
		}
		//
		p.buffer = p.buffer[maxTextBytes:]
		p.address += maxTextBytes
	}
	//
	return nil
}

// Flush any buffered bytes as a final (short) text record.
func (p *textRecordWriter) flush() error {
	if len(p.buffer) == 0 {
		return nil
	}
	//
	err := p.emit(p.buffer)
	p.buffer = p.buffer[:0]
	//
	return err
}

func (p *textRecordWriter) emit(bytes []byte) error {
	_, err := fmt.Fprintf(p.w, "T%06X%02X%s\n", p.address, len(bytes),
		strings.ToUpper(hex.EncodeToString(bytes)))
	//
	return err
}
