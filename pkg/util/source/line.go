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
package source

import (
	"fmt"
)

// Line represents a single line of program text, along with its line number
// in the input stream (counting from 1).  Since input is consumed one line at a
// time, a line is the largest unit of text an error can be reported against.
type Line struct {
	// Text of this line.
	text []rune
	// Line number of this line (counting from 1).
	number int
}

// NewLine constructs a line with a given number and contents.
func NewLine(number int, text string) Line {
	return Line{[]rune(text), number}
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text)
}

// Contents returns the characters making up this line.
func (p *Line) Contents() []rune {
	return p.text
}

// Number gets the line number of this line, where the first line in a stream
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return len(p.text)
}

// Span returns the span covering the whole of this line.
func (p *Line) Span() Span {
	return Span{0, len(p.text)}
}

// SyntaxError constructs a syntax error over a given span of this line with a
// given message.
func (p *Line) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{*p, span, msg}
}

// SyntaxError is a structured error which retains the line on which an error
// occurred, the span within that line and an error message.
type SyntaxError struct {
	line Line
	// Character span within the line where the error arose.
	span Span
	// Error message being reported
	msg string
}

// Line returns the line on which this error is reported.
func (p *SyntaxError) Line() Line {
	return p.line
}

// Span returns the span of the line on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d-%d:%s", p.line.number, p.span.Start()+1, p.span.End()+1, p.Message())
}
