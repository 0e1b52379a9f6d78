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

import "strings"

// Characters stripped from either end of a line.
const trimmed = " \t\n\r\x00\x0B"

var lineTerminators = strings.NewReplacer("\r", "", "\n", "")

// Normalize cleans up a raw line of input.  Comments (from the first '#' to the
// end of the line) are removed, surrounding whitespace is trimmed, runs of
// spaces are collapsed into one and any line terminators are dropped.  If
// nothing remains, false is returned to signal the line should be skipped.
func Normalize(line string) (string, bool) {
	// Strip comment.  This is purely lexical, since '#' can never appear
	// unescaped within a string literal.
	line, _, _ = strings.Cut(line, "#")
	line = strings.Trim(line, trimmed)
	//
	for strings.Contains(line, "  ") {
		line = strings.ReplaceAll(line, "  ", " ")
	}
	//
	line = lineTerminators.Replace(line)
	//
	return line, line != ""
}
