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
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-ippcode/pkg/util/source"
	"github.com/consensys/go-ippcode/pkg/util/termio"
)

// STDIN_NAME identifies standard input in diagnostics.
const STDIN_NAME = "<stdin>"

// Determine whether diagnostics written to a given stream should be
// highlighted.
func highlight(w io.Writer, colour ColourMode) bool {
	switch colour {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return termio.IsTerminal(w)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *source.SyntaxError, colour bool) {
	var (
		line = err.Line()
		span = err.Span()
	)
	// Print error + line number
	fmt.Fprintf(w, "%s:%d: %s\n", STDIN_NAME, line.Number(), err.Message())
	// Nothing to highlight on an empty line (e.g. missing header)
	if line.Length() == 0 {
		return
	}
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent, retaining any tabs so the highlight lines up.
	fmt.Fprint(w, indentOf(line, span))
	// Print highlight
	marker := strings.Repeat("^", max(1, span.Length()))
	//
	if colour {
		_ = termio.Highlight(w, termio.BoldAnsiEscape().FgColour(termio.TERM_RED), marker)
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, marker)
	}
}

// Construct the whitespace preceding a span within a line.
func indentOf(line source.Line, span source.Span) string {
	var (
		builder  strings.Builder
		contents = line.Contents()
	)
	//
	for i := 0; i < span.Start() && i < len(contents); i++ {
		if contents[i] == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	return builder.String()
}
