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
	"fmt"
	"strconv"
	"strings"
)

// ExpectedError describes the error a test program should be rejected with.
type ExpectedError struct {
	// Line number (counting from 1)
	Line int
	// First column of the highlighted span (counting from 1)
	Start int
	// One past the last column of the highlighted span
	End int
	// Error message
	Message string
}

func (p ExpectedError) String() string {
	return fmt.Sprintf("%d:%d-%d %s", p.Line, p.Start, p.End, p.Message)
}

// Extract the expected error from a given line of a test file.  An expected
// error is written as a comment, e.g. "#error:3:5-9:invalid label \"GF@x\"".
func extractExpectedError(line string) (bool, ExpectedError, error) {
	if !strings.HasPrefix(line, "#error") {
		return false, ExpectedError{}, nil
	}
	//
	var splits = strings.Split(line, ":")
	//
	if len(splits) < 4 {
		return true, ExpectedError{}, fmt.Errorf("malformed expected error \"%s\", should be e.g. \"#error:X:Y-Z:msg\"",
			line)
	}
	// Parse line number
	lineno, err := strconv.Atoi(splits[1])
	if err != nil {
		return true, ExpectedError{}, fmt.Errorf("invalid line \"%s\" (%s)", splits[1], err.Error())
	} else if lineno == 0 {
		return true, ExpectedError{}, fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[1])
	}
	// Parse span
	start, end, err := parseExpectedErrorSpan(splits[2])
	if err != nil {
		return true, ExpectedError{}, err
	}
	//
	msg := strings.Join(splits[3:], ":")
	//
	return true, ExpectedError{lineno, start, end, msg}, nil
}

func parseExpectedErrorSpan(span_str string) (start, end int, err error) {
	var (
		// Split the span
		span_splits = strings.Split(span_str, "-")
	)
	//
	if len(span_splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", span_str)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(span_splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span_str, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", span_str)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(span_splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span_str, err.Error())
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (ends before it starts)", span_str)
	}
	//
	return start, end, err
}
