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
	"fmt"

	"github.com/consensys/go-ippcode/pkg/util/source"
	"github.com/consensys/go-ippcode/pkg/util/source/lex"
)

// END_OF signals "end of line"
const END_OF uint = 0

// SPACE signals a single space separating two words
const SPACE uint = 1

// WORD signals an opcode or argument
const WORD uint = 2

// lexing rules for a normalised line.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit(' '), SPACE),
	lex.Rule(lex.Many(lex.Not(' ')), WORD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// word is a token paired with its text.
type word struct {
	text string
	span source.Span
}

// Split a normalised line into the words separated by single spaces.
func split(line source.Line) []word {
	var (
		lexer = lex.NewLexer(line.Contents(), rules...)
		words []word
	)
	//
	for _, token := range lexer.Collect() {
		if token.Kind == WORD {
			words = append(words, word{string(lexer.Text(token)), token.Span})
		}
	}
	//
	return words
}

// ParseInstruction validates a single normalised line as an instruction,
// producing the instruction or an error describing why it was rejected.  The
// order of the returned instruction is not assigned.
func ParseInstruction(line source.Line) (*Instruction, error) {
	words := split(line)
	// Sanity check
	if len(words) == 0 {
		return nil, NewError(UNKNOWN_INSTRUCTION, line, line.Span(), "missing instruction")
	}
	//
	opcode := upper(words[0].text)
	// Lookup signature
	signature, ok := Lookup(opcode)
	if !ok {
		msg := fmt.Sprintf("unknown instruction \"%s\"", words[0].text)
		return nil, NewError(UNKNOWN_INSTRUCTION, line, words[0].span, msg)
	}
	// Check arity
	if len(words)-1 != len(signature) {
		msg := fmt.Sprintf("incorrect number of arguments for %s (expected %d, found %d)", opcode,
			len(signature), len(words)-1)
		//
		return nil, NewError(ARGUMENT_COUNT_MISMATCH, line, line.Span(), msg)
	}
	//
	args := make([]Argument, len(signature))
	//
	for i, role := range signature {
		arg := words[i+1]
		//
		if !role.Accepts(arg.text) {
			msg := fmt.Sprintf("%s \"%s\"", role.Failure(), arg.text)
			return nil, NewError(role.Failure(), line, arg.span, msg)
		}
		// Every accepted token is matched by at least one kind.
		kind, _ := Classify(arg.text)
		args[i] = Argument{uint(i + 1), kind, arg.text}
	}
	//
	return &Instruction{0, opcode, args}, nil
}
