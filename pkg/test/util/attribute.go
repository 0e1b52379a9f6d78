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

// Attribute provides a generic mechanism for extracting attributes from the
// comments at the beginning of a test file.  Given a line, an attribute
// determines whether it matched and, if so, the item it describes or an error
// if the line was malformed.
type Attribute[T any] func(line string) (bool, T, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// test file.  Extraction stops at the first line matched by no attribute.
func ExtractAttributes[T any](lines []string, attributes ...Attribute[T]) ([]T, []error) {
	var (
		items   []T
		errors  []error
		matched = true
	)
	// scan file line-by-line until no more attributes found
	for i := 0; i < len(lines) && matched; i++ {
		matched = false

		for _, attribute := range attributes {
			ok, item, err := attribute(lines[i])
			//
			if err != nil {
				errors = append(errors, err)
			} else if ok {
				items = append(items, item)
			}
			//
			matched = matched || ok
		}
	}
	//
	return items, errors
}
