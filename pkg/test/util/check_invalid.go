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
	"strings"
	"testing"

	"github.com/consensys/go-ippcode/pkg/ippcode"
)

// CheckInvalid translates the program for a given test and checks it is
// rejected with the expected exit status.  The error itself must match the
// one given by the "#error" annotation at the start of the program.
func CheckInvalid(t *testing.T, dir string, test string, exitcode int) {
	var (
		filename = SourceFile(dir, test)
		input    = ReadFile(filename)
		ippcErr  *ippcode.Error
	)
	// Extract expected error
	expected, errs := ExtractAttributes(strings.Split(input, "\n"), extractExpectedError)
	//
	if len(errs) > 0 {
		t.Fatalf("%s: %s", filename, errors.Join(errs...))
	} else if len(expected) != 1 {
		t.Fatalf("%s: expected exactly one error annotation (found %d)", filename, len(expected))
	}
	//
	_, err := ippcode.Parse(ippcode.DefaultConfig(), strings.NewReader(input))
	//
	if err == nil {
		t.Fatalf("%s: translation should have failed", filename)
	} else if !errors.As(err, &ippcErr) {
		t.Fatalf("%s: unexpected error (%s)", filename, err.Error())
	} else if ippcErr.ExitCode() != exitcode {
		t.Errorf("%s: expected exit status %d (found %d)", filename, exitcode, ippcErr.ExitCode())
	}
	//
	if actual := toExpectedError(ippcErr); actual != expected[0] {
		t.Errorf("%s: expected error %s (found %s)", filename, expected[0], actual)
	}
}

// Convert an error into the form used by annotations.
func toExpectedError(err *ippcode.Error) ExpectedError {
	var (
		cause = err.Cause()
		line  = cause.Line()
		span  = cause.Span()
	)
	//
	return ExpectedError{line.Number(), span.Start() + 1, span.End() + 1, cause.Message()}
}
