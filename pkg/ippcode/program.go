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

// Program is a translated IPPcode23 program.
type Program struct {
	// Language recorded on the root element.
	Language string
	// Instructions in the order they appeared.
	Instructions []Instruction
}

// Instruction is a single validated instruction.
type Instruction struct {
	// Order of this instruction within the program, counting from 1.
	Order uint
	// Opcode in upper case.
	Opcode string
	// Arguments in position order.
	Arguments []Argument
}

// Argument is a single instruction argument.
type Argument struct {
	// Position within the enclosing instruction, counting from 1.
	Position uint
	// Kind this argument was classified as.
	Kind Kind
	// Token as it appeared in the source.
	Token string
}

// Payload returns the text of this argument as it appears in the generated XML
// (before escaping).
func (p *Argument) Payload() string {
	return p.Kind.Payload(p.Token)
}

// Statistics counts the occurrences of each opcode.
type Statistics map[string]uint

// Add records a given instruction.
func (s Statistics) Add(insn *Instruction) {
	s[insn.Opcode]++
}

// Statistics counts the occurrences of each opcode in this program.
func (p *Program) Statistics() Statistics {
	stats := make(Statistics)
	//
	for i := range p.Instructions {
		stats.Add(&p.Instructions[i])
	}
	//
	return stats
}
