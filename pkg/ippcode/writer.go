// Copyright Consensys Software Inc.
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
package ippcode

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DECLARATION begins every generated document.
const DECLARATION = `<?xml version="1.0" encoding="UTF-8"?>`

// escaper replaces the characters reserved in XML text.  A replacer makes a
// single pass, hence entities it introduces are never escaped again.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces any occurrence of '&', '<' or '>' in a given string with the
// corresponding XML entity.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Writer serialises a program as XML, one instruction at a time.
type Writer struct {
	out *bufio.Writer
}

// NewWriter constructs a writer for a given output stream.
func NewWriter(output io.Writer) *Writer {
	return &Writer{bufio.NewWriter(output)}
}

// Begin writes the XML declaration and opens the root element.
func (p *Writer) Begin(language string) error {
	fmt.Fprintln(p.out, DECLARATION)
	fmt.Fprintf(p.out, "<program language=\"%s\">\n", Escape(language))
	//
	return p.out.Flush()
}

// Write writes a single instruction, and flushes it to the underlying stream.
func (p *Writer) Write(insn *Instruction) error {
	fmt.Fprintf(p.out, "\t<instruction order=\"%d\" opcode=\"%s\">\n", insn.Order, insn.Opcode)
	//
	for _, arg := range insn.Arguments {
		fmt.Fprintf(p.out, "\t\t<arg%d type=\"%s\">%s</arg%d>\n", arg.Position, arg.Kind,
			Escape(arg.Payload()), arg.Position)
	}
	//
	fmt.Fprintln(p.out, "\t</instruction>")
	//
	return p.out.Flush()
}

// End closes the root element.
func (p *Writer) End() error {
	fmt.Fprintln(p.out, "</program>")
	//
	return p.out.Flush()
}

// WriteProgram writes an entire program.
func WriteProgram(program *Program, output io.Writer) error {
	writer := NewWriter(output)
	//
	if err := writer.Begin(program.Language); err != nil {
		return err
	}
	//
	for i := range program.Instructions {
		if err := writer.Write(&program.Instructions[i]); err != nil {
			return err
		}
	}
	//
	return writer.End()
}
