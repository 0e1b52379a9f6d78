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
package main

import (
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/consensys/go-ippcode/pkg/ippcode"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("pool-size", uint(len(pool)), "Number of pool tokens to enumerate")
	rootCmd.Flags().String("output-dir", "testdata", "Directory to write instruction files into")
	rootCmd.Flags().BoolP("verbose", "v", false, "Increase logging verbosity")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] [opcode...]",
	Short: "Instruction file generation utility for go-ippcode.",
	Long: `Enumerate instructions built from a fixed pool of tokens, splitting them
into those which should be accepted and those which should be rejected.  When
no opcodes are given, files are generated for every known opcode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg TestGenConfig
			err error
		)
		//
		if cfg.poolSize, err = cmd.Flags().GetUint("pool-size"); err != nil {
			return err
		} else if cfg.outputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
			return err
		} else if verbose, err := cmd.Flags().GetBool("verbose"); err != nil {
			return err
		} else if verbose {
			log.SetLevel(log.DebugLevel)
		}
		// Default to every opcode
		if len(args) == 0 {
			args = ippcode.Opcodes()
		}
		//
		for _, opcode := range args {
			signature, ok := ippcode.Lookup(opcode)
			if !ok {
				return fmt.Errorf("unknown opcode \"%s\"", opcode)
			}
			//
			valid, invalid := generateInstructions(cfg, strings.ToUpper(opcode), signature)
			//
			if err := writeInstructions(cfg, opcode, "accepts", valid); err != nil {
				return err
			} else if err := writeInstructions(cfg, opcode, "rejects", invalid); err != nil {
				return err
			}
		}
		//
		return nil
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	poolSize  uint
	outputDir string
}

// Token represents a hand-classified argument.  The roles a token may fill are
// fixed here rather than computed, such that the generated files provide an
// independent check of the classifier.
type Token struct {
	Text  string
	Roles []ippcode.Role
}

var pool = []Token{
	{"GF@x", []ippcode.Role{ippcode.VARIABLE, ippcode.SYMBOL}},
	{"int@-7", []ippcode.Role{ippcode.SYMBOL}},
	{"loop", []ippcode.Role{ippcode.LABEL_NAME}},
	{"int", []ippcode.Role{ippcode.LABEL_NAME, ippcode.TYPE_NAME}},
	{"int@", nil},
	{"LF@_tmp", []ippcode.Role{ippcode.VARIABLE, ippcode.SYMBOL}},
	{"bool@true", []ippcode.Role{ippcode.SYMBOL}},
	{"string@a\\032b", []ippcode.Role{ippcode.SYMBOL}},
	{"nil@nil", []ippcode.Role{ippcode.SYMBOL}},
	{"string", []ippcode.Role{ippcode.LABEL_NAME, ippcode.TYPE_NAME}},
	{"nil", []ippcode.Role{ippcode.LABEL_NAME}},
	{"GF@", nil},
	{"bool@yes", nil},
	{"string@\\12", nil},
	{"9lives", nil},
}

// Oracle determines whether an instruction with a given signature and given
// arguments should be accepted.
func oracle(signature ippcode.Signature, args []Token) bool {
	if len(args) != len(signature) {
		return false
	}
	//
	for i, role := range signature {
		if !slices.Contains(args[i].Roles, role) {
			return false
		}
	}
	//
	return true
}

// Generate instructions for a given opcode
func generateInstructions(cfg TestGenConfig, opcode string, signature ippcode.Signature) ([]string, []string) {
	var (
		tokens  = pool[:min(cfg.poolSize, uint(len(pool)))]
		valid   []string
		invalid []string
	)
	// Include instructions with one argument too few or too many.
	for n := max(1, len(signature)) - 1; n <= len(signature)+1; n++ {
		enumerate(n, len(tokens), func(indices []int) {
			args := make([]Token, n)
			line := []string{opcode}
			//
			for i, index := range indices {
				args[i] = tokens[index]
				line = append(line, args[i].Text)
			}
			// Check whether instruction is valid or not (according to the oracle)
			if oracle(signature, args) {
				valid = append(valid, strings.Join(line, " "))
			} else {
				invalid = append(invalid, strings.Join(line, " "))
			}
		})
	}
	//
	log.Debugf("%s: %d valid, %d invalid", opcode, len(valid), len(invalid))
	// Done
	return valid, invalid
}

// Enumerate every sequence of n indices drawn from [0, k).
func enumerate(n int, k int, fn func([]int)) {
	indices := make([]int, n)
	// Nothing to draw from
	if n > 0 && k == 0 {
		return
	}
	//
	for {
		fn(indices)
		// Advance to the next sequence
		i := n - 1
		for ; i >= 0; i-- {
			if indices[i]++; indices[i] < k {
				break
			}
			//
			indices[i] = 0
		}
		// Check for wrap around
		if i < 0 {
			return
		}
	}
}

func writeInstructions(cfg TestGenConfig, opcode string, ext string, lines []string) error {
	var sb strings.Builder
	// Construct filename
	filename := path.Join(cfg.outputDir, fmt.Sprintf("%s.auto.%s", strings.ToLower(opcode), ext))
	// Generate lines
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	// Write the file
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return err
	}
	// Log what happened
	log.Infof("Wrote %s (%d instructions)\n", filename, len(lines))
	//
	return nil
}
