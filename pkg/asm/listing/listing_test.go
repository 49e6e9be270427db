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
	"strings"
	"testing"

	"github.com/sicxe/sicasm/pkg/asm"
	"github.com/sicxe/sicasm/pkg/util/source"
)

// A minimal complete program exercising instructions, literals and a
// reservation.
const miniProgram = "COPY    START   1000\n" +
	"FIRST   LDA     FIVE\n" +
	"        STA     ALPHA\n" +
	"FIVE    WORD    5\n" +
	"ALPHA   RESW    1\n" +
	"        END     FIRST\n"

func Test_WriteObject(t *testing.T) {
	var builder strings.Builder
	//
	if err := WriteObject(&builder, assembleString(t, miniProgram)); err != nil {
		t.Fatal(err)
	}
	//
	expected := "HCOPY  00100000000C\n" +
		"T001000090320030F2003000005\n" +
		"E001000\n"
	//
	if object := builder.String(); object != expected {
		t.Errorf("object program:\n%sexpected:\n%s", object, expected)
	}
}

func Test_WriteObject_SplitRecords(t *testing.T) {
	program, err := asm.Assemble(mustReadFile(t, "../../../testdata/copy.sic"))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	var builder strings.Builder
	//
	if err := WriteObject(&builder, program); err != nil {
		t.Fatal(err)
	}
	//
	expected := "HCOPY  00100000002B\n" +
		"T0010001E17201B69201B4B201B0320152900003320033F2FF10320034F0000454F46\n" +
		"T00102407B410B4004F0000\n" +
		"E001000\n"
	//
	if object := builder.String(); object != expected {
		t.Errorf("object program:\n%sexpected:\n%s", object, expected)
	}
}

func Test_WriteSymbols(t *testing.T) {
	var builder strings.Builder
	//
	if err := WriteSymbols(&builder, assembleString(t, miniProgram)); err != nil {
		t.Fatal(err)
	}
	//
	expected := "      COPY: 01000\n" +
		"     FIRST: 01000\n" +
		"      FIVE: 01006\n" +
		"     ALPHA: 01009\n"
	//
	if symbols := builder.String(); symbols != expected {
		t.Errorf("symbol table:\n%sexpected:\n%s", symbols, expected)
	}
}

func Test_WriteListing(t *testing.T) {
	var builder strings.Builder
	//
	if err := Write(&builder, assembleString(t, miniProgram)); err != nil {
		t.Fatal(err)
	}
	//
	lines := strings.Split(builder.String(), "\n")
	// Trailing padding is not significant.
	expected := []string{
		"        COPY     START    1000",
		"01000   FIRST    LDA      FIVE         032003",
		"01003            STA      ALPHA        0F2003",
		"01006   FIVE     WORD     5            000005",
		"01009   ALPHA    RESW     1",
		"                 END      FIRST",
	}
	//
	if len(lines) != len(expected)+1 {
		t.Fatalf("listing has %d lines:\n%s", len(lines), builder.String())
	}
	//
	for i, e := range expected {
		if line := strings.TrimRight(lines[i], " "); line != e {
			t.Errorf("listing line %d is %q, expected %q", i, line, e)
		}
	}
}

func Test_WriteListing_Diagnostics(t *testing.T) {
	var builder strings.Builder
	//
	program := assembleString(t,
		"PROG    START   0\n"+
			"        LDA     NOWHERE\n"+
			"        END     PROG\n")
	//
	if err := Write(&builder, program); err != nil {
		t.Fatal(err)
	}
	//
	if !strings.Contains(builder.String(), "*** undefined symbol:") {
		t.Errorf("diagnostic missing from listing:\n%s", builder.String())
	}
}

func assembleString(t *testing.T, text string) *asm.Program {
	t.Helper()
	//
	program, err := asm.Assemble(source.NewSourceFile("test.sic", []byte(text)))
	if err != nil {
		t.Fatal(err)
	}
	//
	return program
}

func mustReadFile(t *testing.T, filename string) *source.File {
	t.Helper()
	//
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	return srcfile
}
