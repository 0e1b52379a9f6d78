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
package termio

import (
	"io"

	"golang.org/x/term"
)

// File is a stream backed by a file descriptor, such as *os.File.
type File interface {
	Fd() uintptr
}

// IsTerminal checks whether a given stream is connected to a terminal.  Only
// streams backed by a file descriptor can be terminals.
func IsTerminal(stream any) bool {
	if file, ok := stream.(File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	//
	return false
}

// Highlight wraps some text in a given escape so that it is formatted when
// written to a terminal, followed by a reset.
func Highlight(w io.Writer, escape AnsiEscape, text string) error {
	_, err := io.WriteString(w, escape.Build()+text+ResetAnsiEscape().Build())
	return err
}
