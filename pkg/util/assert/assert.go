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
package assert

import (
	"math"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of different
// types are compared by value, so that (for example) an untyped constant can be
// compared against a uint.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg)
	t.FailNow()
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}

	t.Errorf("condition is false")
	report(t, msg)
	t.FailNow()
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}

	t.Errorf("condition is true")
	report(t, msg)
	t.FailNow()
}

// NoError errors if err is non-nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		return
	}

	t.Errorf("unexpected error: %s", err.Error())
	report(t, msg)
	t.FailNow()
}

// Error errors if err is nil.
func Error(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		return
	}

	t.Errorf("expected an error")
	report(t, msg)
	t.FailNow()
}

func report(t *testing.T, msg []any) {
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
}

// intEqual returns whether expected and actual are both integers with the same
// value.
func intEqual(expected, actual any) bool {
	a, aOk := asInteger(expected)
	b, bOk := asInteger(actual)
	//
	return aOk && bOk && a == b
}

// integer is a normalised integer value, where negative values are recorded
// separately so that the full uint64 range can be represented.
type integer struct {
	negative  bool
	magnitude uint64
}

func asInteger(x any) (integer, bool) {
	v := reflect.ValueOf(x)
	//
	switch {
	case !v.IsValid():
		return integer{}, false
	case v.CanInt():
		if i := v.Int(); i < 0 {
			if i == math.MinInt64 {
				return integer{true, uint64(math.MaxInt64) + 1}, true
			}

			return integer{true, uint64(-i)}, true
		} else {
			return integer{false, uint64(i)}, true
		}
	case v.CanUint():
		return integer{false, v.Uint()}, true
	}
	//
	return integer{}, false
}
