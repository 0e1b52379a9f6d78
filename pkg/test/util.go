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
package test

import (
	"testing"

	"github.com/consensys/go-ippcode/pkg/test/util"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the test programs (ippc), their translations (xml) and the instruction
// files (accepts/rejects) are found.
const TestDir = "../../testdata"

func checkValid(t *testing.T, test string) {
	util.CheckValid(t, TestDir+"/valid", test)
}

func checkInvalid(t *testing.T, test string, exitcode int) {
	util.CheckInvalid(t, TestDir+"/invalid", test, exitcode)
}

func checkInstructions(t *testing.T, test string) {
	util.CheckInstructions(t, TestDir, test)
}
