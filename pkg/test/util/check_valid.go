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
	"strings"
	"testing"

	"github.com/consensys/go-ippcode/pkg/ippcode"
)

// CheckValid translates the program for a given test and checks the result
// matches the expected translation exactly.
func CheckValid(t *testing.T, dir string, test string) {
	var (
		input    = ReadFile(SourceFile(dir, test))
		expected = ReadFile(OutputFile(dir, test))
		output   strings.Builder
	)
	//
	if err := ippcode.Translate(ippcode.DefaultConfig(), strings.NewReader(input), &output); err != nil {
		t.Fatalf("%s: unexpected error (%s)", test, err.Error())
	} else if output.String() != expected {
		t.Errorf("%s: translation differs\n--- expected ---\n%s--- actual ---\n%s", test, expected,
			output.String())
	}
}
