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
	"testing"

	"github.com/consensys/go-ippcode/pkg/util/assert"
)

func Test_ExpectedError_01(t *testing.T) {
	ok, item, err := extractExpectedError("#error:3:5-9:invalid label \"GF@x\"")
	//
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, ExpectedError{3, 5, 9, "invalid label \"GF@x\""}, item)
}

func Test_ExpectedError_02(t *testing.T) {
	// Messages may contain ':'
	_, item, err := extractExpectedError("#error:2:1-5:unknown instruction \"a:b\"")
	//
	assert.NoError(t, err)
	assert.Equal(t, "unknown instruction \"a:b\"", item.Message)
}

func Test_ExpectedError_03(t *testing.T) {
	ok, _, err := extractExpectedError(".IPPcode23")
	//
	assert.False(t, ok)
	assert.NoError(t, err)
}

func Test_ExpectedError_04(t *testing.T) {
	for _, line := range []string{"#error:1:1-2", "#error:x:1-2:m", "#error:0:1-2:m", "#error:1:12:m",
		"#error:1:0-2:m", "#error:1:3-2:m"} {
		ok, _, err := extractExpectedError(line)
		//
		assert.True(t, ok)
		assert.Error(t, err)
	}
}

func Test_ExtractAttributes_01(t *testing.T) {
	lines := []string{"#error:1:1-2:a", "#error:2:1-2:b", ".IPPcode23", "#error:4:1-2:c"}
	items, errs := ExtractAttributes(lines, extractExpectedError)
	// Extraction stops at the header
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "b", items[1].Message)
}

func Test_ExtractAttributes_02(t *testing.T) {
	lines := []string{"#error:1:1-2:a", "#error:1:x:b"}
	items, errs := ExtractAttributes(lines, extractExpectedError)
	//
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, 1, len(items))
}
