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
	"strings"
	"unicode"

	"github.com/consensys/go-ippcode/pkg/util/source/lex"
)

// Kind identifies what an instruction argument looks like, as recorded in the
// "type" attribute of its XML element.
type Kind uint

// VAR signals a variable reference (e.g. "GF@x")
const VAR Kind = 0

// TYPE signals a type name (e.g. "int")
const TYPE Kind = 1

// LABEL signals a label name (e.g. "loop")
const LABEL Kind = 2

// STRING signals a string literal (e.g. "string@hello\032world")
const STRING Kind = 3

// INT signals an integer literal (e.g. "int@-42")
const INT Kind = 4

// BOOL signals a boolean literal (e.g. "bool@true")
const BOOL Kind = 5

// NIL signals the nil literal "nil@nil"
const NIL Kind = 6

// KINDS lists every kind in order of precedence.  When a token matches more
// than one kind, the earliest kind in this list determines how it is labelled.
// For example, "int" is a valid label but is labelled as a type.
var KINDS = []Kind{VAR, TYPE, LABEL, STRING, INT, BOOL, NIL}

// Rules for describing identifiers.  These are shared by variables (after the
// frame prefix) and labels.
var (
	special = lex.Or(
		lex.Unit('_'), lex.Unit('-'), lex.Unit('$'), lex.Unit('&'),
		lex.Unit('%'), lex.Unit('*'), lex.Unit('!'), lex.Unit('?'))

	identifierStart = lex.Or(
		lex.Within('a', 'z'),
		lex.Within('A', 'Z'),
		special)

	identifierRest = lex.Many(lex.Or(
		lex.Within('0', '9'),
		lex.Within('a', 'z'),
		lex.Within('A', 'Z'),
		special))

	identifier = lex.And(identifierStart, identifierRest)
)

// Rule for describing variables.  A variable is an identifier qualified by the
// frame (global, local or temporary) in which it lives.
var (
	frame    = lex.Or(lex.String("GF"), lex.String("LF"), lex.String("TF"))
	variable = lex.Sequence(frame, lex.Unit('@'), identifier)
)

// Rule for describing the built-in type names.
var typename = lex.Or(lex.String("int"), lex.String("string"), lex.String("bool"))

// Rules for describing literals.
var (
	digit  = lex.Within('0', '9')
	digits = lex.And(digit, lex.Many(digit))
	sign   = lex.Or(lex.Unit('+'), lex.Unit('-'))

	integer = lex.Or(
		lex.Sequence(lex.String("int@"), sign, digits),
		lex.Sequence(lex.String("int@"), digits))

	boolean = lex.Or(lex.String("bool@true"), lex.String("bool@false"))

	nilLiteral = lex.String("nil@nil")

	// Characters which cannot appear raw are written as a backslash followed
	// by their three digit decimal code.
	escape = lex.Sequence(lex.Unit('\\'), digit, digit, digit)
	plain  = lex.Satisfies(func(r rune) bool { return r != '\\' && !unicode.IsSpace(r) })
	strung = lex.SequenceNullableLast(lex.String("string@"), lex.Many(lex.Or(escape, plain)))
)

// scanner returns the rule describing tokens of this kind.
func (k Kind) scanner() lex.Scanner[rune] {
	switch k {
	case VAR:
		return variable
	case TYPE:
		return typename
	case LABEL:
		return identifier
	case STRING:
		return strung
	case INT:
		return integer
	case BOOL:
		return boolean
	case NIL:
		return nilLiteral
	}
	//
	panic("unknown argument kind")
}

// Matches checks whether a given token is well-formed for this kind.
func (k Kind) Matches(token string) bool {
	return lex.Matches(k.scanner(), []rune(token))
}

// IsLiteral checks whether this kind describes a literal constant.
func (k Kind) IsLiteral() bool {
	return k == STRING || k == INT || k == BOOL || k == NIL
}

// Prefix returns the type prefix carried by literals of this kind, or the
// empty string for kinds which have no prefix.
func (k Kind) Prefix() string {
	if k.IsLiteral() {
		return k.String() + "@"
	}
	//
	return ""
}

// Payload returns the text of a token of this kind as it appears in the
// generated XML (before escaping).  For literals, this strips the type prefix.
func (k Kind) Payload(token string) string {
	return strings.TrimPrefix(token, k.Prefix())
}

func (k Kind) String() string {
	switch k {
	case VAR:
		return "var"
	case TYPE:
		return "type"
	case LABEL:
		return "label"
	case STRING:
		return "string"
	case INT:
		return "int"
	case BOOL:
		return "bool"
	case NIL:
		return "nil"
	}
	//
	return "unknown"
}

// Classify determines the kind of a given token, according to the precedence
// order of KINDS.  If the token matches no kind, then false is returned.
func Classify(token string) (Kind, bool) {
	runes := []rune(token)
	//
	for _, kind := range KINDS {
		if lex.Matches(kind.scanner(), runes) {
			return kind, true
		}
	}
	//
	return 0, false
}
