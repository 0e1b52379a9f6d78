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
	"testing"

	"github.com/consensys/go-ippcode/pkg/util/assert"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	for _, opcode := range []string{"move", "MOVE", "Move", "mOvE"} {
		sig, ok := Lookup(opcode)
		assert.True(t, ok, "opcode \"%s\" not found", opcode)
		assert.Equal(t, Signature{VARIABLE, SYMBOL}, sig)
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, opcode := range []string{"", "FOO", ".IPPcode23", "MOVE2", "JUMPIF"} {
		_, ok := Lookup(opcode)
		assert.False(t, ok, "opcode \"%s\" should be unknown", opcode)
	}
}

func TestLookup_NonAscii(t *testing.T) {
	// Only ASCII letters are case folded.
	for _, opcode := range []string{"wrıte", "ſtrlen", "MOVE "} {
		_, ok := Lookup(opcode)
		assert.False(t, ok, "opcode \"%s\" should be unknown", opcode)
	}
}

func TestLookup_Signatures(t *testing.T) {
	checkSignature(t, "CREATEFRAME")
	checkSignature(t, "PUSHFRAME")
	checkSignature(t, "POPFRAME")
	checkSignature(t, "RETURN")
	checkSignature(t, "BREAK")
	checkSignature(t, "DEFVAR", VARIABLE)
	checkSignature(t, "POPS", VARIABLE)
	checkSignature(t, "CALL", LABEL_NAME)
	checkSignature(t, "LABEL", LABEL_NAME)
	checkSignature(t, "JUMP", LABEL_NAME)
	checkSignature(t, "PUSHS", SYMBOL)
	checkSignature(t, "WRITE", SYMBOL)
	checkSignature(t, "EXIT", SYMBOL)
	checkSignature(t, "DPRINT", SYMBOL)
	checkSignature(t, "MOVE", VARIABLE, SYMBOL)
	checkSignature(t, "NOT", VARIABLE, SYMBOL)
	checkSignature(t, "INT2CHAR", VARIABLE, SYMBOL)
	checkSignature(t, "STRLEN", VARIABLE, SYMBOL)
	checkSignature(t, "TYPE", VARIABLE, SYMBOL)
	checkSignature(t, "READ", VARIABLE, TYPE_NAME)
	checkSignature(t, "JUMPIFEQ", LABEL_NAME, SYMBOL, SYMBOL)
	checkSignature(t, "JUMPIFNEQ", LABEL_NAME, SYMBOL, SYMBOL)
	//
	for _, opcode := range []string{"ADD", "SUB", "MUL", "IDIV", "LT", "GT", "EQ", "AND", "OR", "STRI2INT",
		"CONCAT", "GETCHAR", "SETCHAR"} {
		checkSignature(t, opcode, VARIABLE, SYMBOL, SYMBOL)
	}
}

func TestLookup_Isolated(t *testing.T) {
	sig, _ := Lookup("ADD")
	sig[0] = TYPE_NAME
	//
	checkSignature(t, "ADD", VARIABLE, SYMBOL, SYMBOL)
}

func TestOpcodes(t *testing.T) {
	opcodes := Opcodes()
	//
	assert.Equal(t, 35, len(opcodes))
	assert.Equal(t, "ADD", opcodes[0])
	assert.Equal(t, "WRITE", opcodes[len(opcodes)-1])
}

func TestRole_Accepts(t *testing.T) {
	// Variables
	assert.True(t, VARIABLE.Accepts("LF@x"))
	assert.False(t, VARIABLE.Accepts("int@1"))
	assert.False(t, VARIABLE.Accepts("x"))
	// Symbols
	for _, token := range []string{"GF@x", "int@1", "bool@true", "string@", "nil@nil"} {
		assert.True(t, SYMBOL.Accepts(token), "symbol \"%s\" rejected", token)
	}
	//
	for _, token := range []string{"x", "int", "nil", "int@", "bool@yes"} {
		assert.False(t, SYMBOL.Accepts(token), "symbol \"%s\" accepted", token)
	}
	// Labels
	assert.True(t, LABEL_NAME.Accepts("int"))
	assert.True(t, LABEL_NAME.Accepts("end"))
	assert.False(t, LABEL_NAME.Accepts("GF@end"))
	assert.False(t, LABEL_NAME.Accepts("string@end"))
	// Types
	assert.True(t, TYPE_NAME.Accepts("bool"))
	assert.False(t, TYPE_NAME.Accepts("nil"))
	assert.False(t, TYPE_NAME.Accepts("bool@true"))
}

func TestRole_Failure(t *testing.T) {
	assert.Equal(t, INVALID_VARIABLE, VARIABLE.Failure())
	assert.Equal(t, INVALID_SYMBOL, SYMBOL.Failure())
	assert.Equal(t, INVALID_LABEL, LABEL_NAME.Failure())
	assert.Equal(t, INVALID_TYPE, TYPE_NAME.Failure())
	//
	for _, role := range []Role{VARIABLE, SYMBOL, LABEL_NAME, TYPE_NAME} {
		assert.Equal(t, EXIT_ARGUMENT, role.Failure().ExitCode())
	}
}

func checkSignature(t *testing.T, opcode string, expected ...Role) {
	t.Helper()
	//
	sig, ok := Lookup(opcode)
	assert.True(t, ok, "opcode \"%s\" not found", opcode)
	assert.Equal(t, len(expected), len(sig), "opcode \"%s\" has wrong arity", opcode)
	//
	for i := range expected {
		assert.Equal(t, expected[i], sig[i], "opcode \"%s\" has wrong role at %d", opcode, i+1)
	}
}
