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
package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/consensys/go-ippcode/pkg/ippcode"
)

// InstructionsConfig describes a kind of instruction file, and whether the
// instructions it contains should be accepted or not.
type InstructionsConfig struct {
	// File extension
	Extension string
	// Expected outcome
	Expected bool
}

// INSTRUCTION_EXTENSIONS lists the possible extensions of instruction files.
var INSTRUCTION_EXTENSIONS = []InstructionsConfig{
	{"accepts", true},
	{"rejects", false},
	{"auto.accepts", true},
	{"auto.rejects", false},
}

// CheckInstructions checks every instruction listed for a given test has the
// expected outcome.  Each line of an instruction file is translated on its own
// as the body of a program.  Accepted lines must produce exactly one
// instruction, whilst rejected lines must fail at the instruction level (i.e.
// never because of the header).
func CheckInstructions(t *testing.T, dir string, test string) {
	// Enable testing each file in parallel
	t.Parallel()
	// Record how many tests executed.
	nTests := 0
	//
	for _, cfg := range INSTRUCTION_EXTENSIONS {
		filename := fmt.Sprintf("%s/%s.%s", dir, test, cfg.Extension)
		lines := ReadLines(filename)
		//
		for i, line := range lines {
			checkInstruction(t, filename, i+1, line, cfg.Expected)
		}
		//
		nTests += len(lines)
	}
	// Sanity check at least one instruction found.
	if nTests == 0 {
		panic(fmt.Sprintf("missing any tests for %s", test))
	}
}

func checkInstruction(t *testing.T, filename string, lineno int, line string, expected bool) {
	var (
		config  = ippcode.DefaultConfig()
		input   = fmt.Sprintf("%s\n%s\n", config.Header, line)
		ippcErr *ippcode.Error
	)
	//
	program, err := ippcode.Parse(config, strings.NewReader(input))
	//
	switch {
	case expected && err != nil:
		t.Errorf("%s:%d: instruction rejected (%s)", filename, lineno, err.Error())
	case expected && len(program.Instructions) != 1:
		t.Errorf("%s:%d: expected one instruction (found %d)", filename, lineno, len(program.Instructions))
	case !expected && err == nil:
		t.Errorf("%s:%d: instruction accepted", filename, lineno)
	case !expected && !errors.As(err, &ippcErr):
		t.Errorf("%s:%d: unexpected error (%s)", filename, lineno, err.Error())
	case !expected && ippcErr.Failure() == ippcode.INVALID_HEADER:
		t.Errorf("%s:%d: header rejected (%s)", filename, lineno, err.Error())
	}
}
