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
	"testing"

	"github.com/sicxe/sicasm/pkg/util/source"
)

func Test_Lex(t *testing.T) {
	text := ". a comment line\n" +
		"COPY    START   1000\n" +
		"        LDA     ALPHA   . trailing comment\n" +
		"\n" +
		". another comment\n" +
		"ALPHA   RESW    1\n" +
		"        +JSUB   SUBR\n" +
		"        END     COPY\n"
	//
	records := Lex(source.NewSourceFile("test.sic", []byte(text)))
	//
	expected := []SourceRecord{
		{Line: 2, Label: "COPY", Mnemonic: "START", Operand: "1000"},
		{Line: 3, Label: "", Mnemonic: "LDA", Operand: "ALPHA"},
		{Line: 6, Label: "ALPHA", Mnemonic: "RESW", Operand: "1"},
		{Line: 7, Label: "", Mnemonic: "+JSUB", Operand: "SUBR"},
		{Line: 8, Label: "", Mnemonic: "END", Operand: "COPY"},
	}
	//
	if len(records) != len(expected) {
		t.Fatalf("lexed %d records, expected %d", len(records), len(expected))
	}
	//
	for i, e := range expected {
		r := records[i]
		//
		if r.Line != e.Line || r.Label != e.Label || r.Mnemonic != e.Mnemonic || r.Operand != e.Operand {
			t.Errorf("record %d: got {%d %q %q %q}, expected {%d %q %q %q}", i,
				r.Line, r.Label, r.Mnemonic, r.Operand, e.Line, e.Label, e.Mnemonic, e.Operand)
		}
	}
}

func Test_Lex_Extension(t *testing.T) {
	records := Lex(source.NewSourceFile("test.sic", []byte("        +LDA    BUF\n")))
	//
	if len(records) != 1 {
		t.Fatalf("lexed %d records", len(records))
	}
	//
	if !records[0].Extended() {
		t.Error("record should be extended")
	}
	//
	if records[0].BaseMnemonic() != "LDA" {
		t.Errorf("base mnemonic %q", records[0].BaseMnemonic())
	}
}

func Test_Lex_MultibyteOperandSpan(t *testing.T) {
	// Multi-byte characters before or inside the operand must not skew its
	// span, which indexes runes rather than bytes.
	srcfile := source.NewSourceFile("test.sic",
		[]byte("MSG     BYTE    C'é£'\n"+
			"ÉTIQ    LDA     MSG\n"))
	//
	records := Lex(srcfile)
	if len(records) != 2 {
		t.Fatalf("lexed %d records", len(records))
	}
	//
	contents := srcfile.Contents()
	//
	span := records[0].OperandSpan
	if operand := string(contents[span.Start():span.End()]); operand != "C'é£'" {
		t.Errorf("operand span covers %q", operand)
	}
	//
	span = records[1].OperandSpan
	if operand := string(contents[span.Start():span.End()]); operand != "MSG" {
		t.Errorf("operand span covers %q", operand)
	}
	//
	if records[1].Label != "ÉTIQ" {
		t.Errorf("label %q", records[1].Label)
	}
}

func Test_Lex_IndentedComment(t *testing.T) {
	records := Lex(source.NewSourceFile("test.sic", []byte("    . indented comment\n")))
	//
	if len(records) != 0 {
		t.Fatalf("lexed %d records from a comment", len(records))
	}
}

func Test_Lex_LabelOnly(t *testing.T) {
	records := Lex(source.NewSourceFile("test.sic", []byte("HERE\n")))
	//
	if len(records) != 1 {
		t.Fatalf("lexed %d records", len(records))
	}
	//
	if records[0].Label != "HERE" || records[0].Mnemonic != "" {
		t.Errorf("got {%q %q}", records[0].Label, records[0].Mnemonic)
	}
}
