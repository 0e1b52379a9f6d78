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
	"maps"
	"slices"
	"strings"
)

// Role identifies what an argument position within an instruction requires.
type Role uint

// VARIABLE requires a variable reference.
const VARIABLE Role = 0

// SYMBOL requires either a variable reference or a literal constant.
const SYMBOL Role = 1

// LABEL_NAME requires a label.
const LABEL_NAME Role = 2

// TYPE_NAME requires one of the built-in type names.
const TYPE_NAME Role = 3

// Accepts checks whether a given token can be used in a position with this
// role.  Observe that this is independent of how the token is eventually
// classified for output.  For example, "int" is accepted as a label, though it
// is classified as a type.
func (r Role) Accepts(token string) bool {
	switch r {
	case VARIABLE:
		return VAR.Matches(token)
	case SYMBOL:
		if VAR.Matches(token) {
			return true
		}
		//
		for _, kind := range KINDS {
			if kind.IsLiteral() && kind.Matches(token) {
				return true
			}
		}
		//
		return false
	case LABEL_NAME:
		return LABEL.Matches(token)
	case TYPE_NAME:
		return TYPE.Matches(token)
	}
	//
	panic("unknown argument role")
}

// Failure returns the failure reported when a token is not accepted by this
// role.
func (r Role) Failure() Failure {
	switch r {
	case VARIABLE:
		return INVALID_VARIABLE
	case SYMBOL:
		return INVALID_SYMBOL
	case LABEL_NAME:
		return INVALID_LABEL
	default:
		return INVALID_TYPE
	}
}

func (r Role) String() string {
	switch r {
	case VARIABLE:
		return "variable"
	case SYMBOL:
		return "symbol"
	case LABEL_NAME:
		return "label"
	case TYPE_NAME:
		return "type"
	}
	//
	return "unknown"
}

// Signature describes the arguments required by an instruction, in order.
type Signature []Role

// Common signatures
var (
	noArgs     = Signature{}
	varOnly    = Signature{VARIABLE}
	symbOnly   = Signature{SYMBOL}
	labelOnly  = Signature{LABEL_NAME}
	varSymb    = Signature{VARIABLE, SYMBOL}
	varSymbSym = Signature{VARIABLE, SYMBOL, SYMBOL}
	labelSymbs = Signature{LABEL_NAME, SYMBOL, SYMBOL}
	varType    = Signature{VARIABLE, TYPE_NAME}
)

// instructions maps every known opcode to its signature.
var instructions = map[string]Signature{
	// Frames and calls
	"MOVE":        varSymb,
	"CREATEFRAME": noArgs,
	"PUSHFRAME":   noArgs,
	"POPFRAME":    noArgs,
	"DEFVAR":      varOnly,
	"CALL":        labelOnly,
	"RETURN":      noArgs,
	// Data stack
	"PUSHS": symbOnly,
	"POPS":  varOnly,
	// Arithmetic, relational, boolean and conversion
	"ADD":      varSymbSym,
	"SUB":      varSymbSym,
	"MUL":      varSymbSym,
	"IDIV":     varSymbSym,
	"LT":       varSymbSym,
	"GT":       varSymbSym,
	"EQ":       varSymbSym,
	"AND":      varSymbSym,
	"OR":       varSymbSym,
	"NOT":      varSymb,
	"INT2CHAR": varSymb,
	"STRI2INT": varSymbSym,
	// Input / output
	"READ":  varType,
	"WRITE": symbOnly,
	// Strings
	"CONCAT":  varSymbSym,
	"STRLEN":  varSymb,
	"GETCHAR": varSymbSym,
	"SETCHAR": varSymbSym,
	// Types
	"TYPE": varSymb,
	// Control flow
	"LABEL":     labelOnly,
	"JUMP":      labelOnly,
	"JUMPIFEQ":  labelSymbs,
	"JUMPIFNEQ": labelSymbs,
	"EXIT":      symbOnly,
	// Debugging
	"DPRINT": symbOnly,
	"BREAK":  noArgs,
}

// Lookup returns the signature of a given opcode.  Opcodes are case
// insensitive.  If the opcode is unknown, then false is returned.
func Lookup(opcode string) (Signature, bool) {
	sig, ok := instructions[upper(opcode)]
	return slices.Clone(sig), ok
}

// Opcodes returns every known opcode (in upper case and sorted).
func Opcodes() []string {
	return slices.Sorted(maps.Keys(instructions))
}

// upper converts the ASCII letters of a given string to upper case.  Any other
// character is left unchanged, hence a mnemonic containing (say) a dotless 'ı'
// never matches an opcode.
func upper(text string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		//
		return r
	}, text)
}
