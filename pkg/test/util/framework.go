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
	"os"
	"strings"
)

// SOURCE_EXT is the extension of every test program.
const SOURCE_EXT = "ippc"

// OUTPUT_EXT is the extension of the expected translation of a test program.
const OUTPUT_EXT = "xml"

// ReadFile reads the contents of a given test file, panicking if the file
// cannot be read.  Test files are always expected to exist, hence a missing
// file indicates a broken test rather than a failure.
func ReadFile(filename string) string {
	bytes, err := os.ReadFile(filename)
	// Handle errors
	if err != nil {
		panic(fmt.Sprintf("failed reading %s: %s", filename, err.Error()))
	}
	//
	return string(bytes)
}

// ReadLines reads the lines of a given test file, with any line terminators
// removed.  If the file doesn't exist, then nil is returned.
func ReadLines(filename string) []string {
	bytes, err := os.ReadFile(filename)
	// Handle errors
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		panic(fmt.Sprintf("failed reading %s: %s", filename, err.Error()))
	}
	//
	text := strings.TrimSuffix(string(bytes), "\n")
	//
	return strings.Split(text, "\n")
}

// SourceFile constructs the name of the program for a given test.
func SourceFile(dir string, test string) string {
	return fmt.Sprintf("%s/%s.%s", dir, test, SOURCE_EXT)
}

// OutputFile constructs the name of the expected translation for a given test.
func OutputFile(dir string, test string) string {
	return fmt.Sprintf("%s/%s.%s", dir, test, OUTPUT_EXT)
}
