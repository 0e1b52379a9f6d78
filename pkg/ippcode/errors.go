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
	"github.com/consensys/go-ippcode/pkg/util/source"
)

// EXIT_OK is the exit status of a successful translation.
const EXIT_OK = 0

// EXIT_USAGE is the exit status for a malformed command line.
const EXIT_USAGE = 10

// EXIT_HEADER is the exit status for a missing or incorrect header.
const EXIT_HEADER = 21

// EXIT_OPCODE is the exit status for an unknown instruction.
const EXIT_OPCODE = 22

// EXIT_ARGUMENT is the exit status for any malformed instruction argument,
// including the wrong number of arguments.
const EXIT_ARGUMENT = 23

// EXIT_INTERNAL is the exit status for failures unrelated to the program being
// translated (e.g. the input stream could not be read).
const EXIT_INTERNAL = 99

// Failure identifies the reason a translation was aborted.
type Failure uint

// INVALID_HEADER signals that the first line was not the dialect marker.
const INVALID_HEADER Failure = 0

// UNKNOWN_INSTRUCTION signals an opcode missing from the instruction table.
const UNKNOWN_INSTRUCTION Failure = 1

// ARGUMENT_COUNT_MISMATCH signals an instruction with the wrong number of
// arguments for its signature.
const ARGUMENT_COUNT_MISMATCH Failure = 2

// INVALID_VARIABLE signals a malformed argument in a variable position.
const INVALID_VARIABLE Failure = 3

// INVALID_SYMBOL signals a malformed argument in a symbol position.
const INVALID_SYMBOL Failure = 4

// INVALID_LABEL signals a malformed argument in a label position.
const INVALID_LABEL Failure = 5

// INVALID_TYPE signals a malformed argument in a type position.
const INVALID_TYPE Failure = 6

// ExitCode returns the process exit status associated with this failure.
// Every argument-level failure shares a single status.
func (f Failure) ExitCode() int {
	switch f {
	case INVALID_HEADER:
		return EXIT_HEADER
	case UNKNOWN_INSTRUCTION:
		return EXIT_OPCODE
	case ARGUMENT_COUNT_MISMATCH, INVALID_VARIABLE, INVALID_SYMBOL, INVALID_LABEL, INVALID_TYPE:
		return EXIT_ARGUMENT
	}
	//
	return EXIT_INTERNAL
}

func (f Failure) String() string {
	switch f {
	case INVALID_HEADER:
		return "invalid header"
	case UNKNOWN_INSTRUCTION:
		return "unknown instruction"
	case ARGUMENT_COUNT_MISMATCH:
		return "argument count mismatch"
	case INVALID_VARIABLE:
		return "invalid variable"
	case INVALID_SYMBOL:
		return "invalid symbol"
	case INVALID_LABEL:
		return "invalid label"
	case INVALID_TYPE:
		return "invalid type"
	}
	//
	return "unknown failure"
}

// Error is raised when a program is rejected.  It identifies the reason for
// rejection, along with the offending line and the span within it.
type Error struct {
	failure Failure
	cause   *source.SyntaxError
}

// NewError constructs a new error for a given failure on a given line.
func NewError(failure Failure, line source.Line, span source.Span, msg string) *Error {
	return &Error{failure, line.SyntaxError(span, msg)}
}

// Failure returns the reason for this error.
func (e *Error) Failure() Failure {
	return e.failure
}

// Cause returns the syntax error describing where this error arose.
func (e *Error) Cause() *source.SyntaxError {
	return e.cause
}

// ExitCode returns the process exit status for this error.
func (e *Error) ExitCode() int {
	return e.failure.ExitCode()
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.cause.Error()
}

// Unwrap exposes the underlying syntax error.
func (e *Error) Unwrap() error {
	return e.cause
}
