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
package cmd_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/consensys/go-ippcode/pkg/cmd"
	"github.com/consensys/go-ippcode/pkg/ippcode"
)

var _ = Describe("Run", func() {
	var (
		stdout *bytes.Buffer
		stderr *bytes.Buffer
		env    map[string]string
	)

	getenv := func(key string) string {
		return env[key]
	}

	run := func(input string, args ...string) int {
		return cmd.Run(args, getenv, cmd.Streams{In: strings.NewReader(input), Out: stdout, Err: stderr})
	}

	BeforeEach(func() {
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		env = map[string]string{}
	})

	Context("with a well-formed program", func() {
		It("should translate a single instruction", func() {
			status := run(".IPPcode23\nMOVE GF@x int@5\n")

			Expect(status).To(Equal(ippcode.EXIT_OK))
			Expect(stdout.String()).To(Equal(
				"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
					"<program language=\"IPPcode23\">\n" +
					"\t<instruction order=\"1\" opcode=\"MOVE\">\n" +
					"\t\t<arg1 type=\"var\">GF@x</arg1>\n" +
					"\t\t<arg2 type=\"int\">5</arg2>\n" +
					"\t</instruction>\n" +
					"</program>\n"))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("should escape reserved characters", func() {
			Expect(run(".IPPcode23\nWRITE string@a&b\n")).To(Equal(ippcode.EXIT_OK))
			Expect(stdout.String()).To(ContainSubstring("<arg1 type=\"string\">a&amp;b</arg1>"))
		})

		It("should number instructions without gaps", func() {
			Expect(run(".IPPcode23\n\nBREAK\n# comment\nbreak\n\n\nBreak\n")).To(Equal(ippcode.EXIT_OK))
			Expect(stdout.String()).To(ContainSubstring("order=\"1\" opcode=\"BREAK\""))
			Expect(stdout.String()).To(ContainSubstring("order=\"2\" opcode=\"BREAK\""))
			Expect(stdout.String()).To(ContainSubstring("order=\"3\" opcode=\"BREAK\""))
			Expect(stdout.String()).NotTo(ContainSubstring("order=\"4\""))
		})
	})

	Context("with a malformed program", func() {
		It("should reject a missing header", func() {
			Expect(run("MOVE GF@x int@5\n")).To(Equal(ippcode.EXIT_HEADER))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(HavePrefix("<stdin>:1: incorrect header"))
		})

		It("should reject empty input", func() {
			Expect(run("")).To(Equal(ippcode.EXIT_HEADER))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(Equal("<stdin>:1: missing header \".IPPcode23\"\n"))
		})

		It("should reject an unknown instruction", func() {
			Expect(run(".IPPcode23\nFOO\n")).To(Equal(ippcode.EXIT_OPCODE))
		})

		It("should reject a repeated header", func() {
			Expect(run(".IPPcode23\n   \n.IPPcode23\n")).To(Equal(ippcode.EXIT_OPCODE))
		})

		It("should reject the wrong number of arguments", func() {
			Expect(run(".IPPcode23\nADD GF@x int@1\n")).To(Equal(ippcode.EXIT_ARGUMENT))
		})

		It("should highlight the offending argument", func() {
			Expect(run(".IPPcode23\nMOVE GF@x int@x\n")).To(Equal(ippcode.EXIT_ARGUMENT))
			Expect(stderr.String()).To(Equal(
				"<stdin>:2: invalid symbol \"int@x\"\n" +
					"MOVE GF@x int@x\n" +
					"          ^^^^^\n"))
		})

		It("should keep instructions written before the failure", func() {
			Expect(run(".IPPcode23\nBREAK\nJUMP GF@x\n")).To(Equal(ippcode.EXIT_ARGUMENT))
			Expect(stdout.String()).To(ContainSubstring("opcode=\"BREAK\""))
			Expect(stdout.String()).NotTo(ContainSubstring("JUMP"))
		})
	})

	Context("with command line arguments", func() {
		It("should print usage for --help", func() {
			Expect(run(".IPPcode23\nBREAK\n", "--help")).To(Equal(ippcode.EXIT_OK))
			Expect(stdout.String()).To(Equal(cmd.USAGE))
		})

		It("should reject -h", func() {
			Expect(run("", "-h")).To(Equal(ippcode.EXIT_USAGE))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("should reject positional arguments", func() {
			Expect(run(".IPPcode23\n", "program.ippc")).To(Equal(ippcode.EXIT_USAGE))
			Expect(stderr.String()).To(ContainSubstring("incorrect argument"))
		})

		It("should reject --help alongside other arguments", func() {
			Expect(run("", "--help", "--help")).To(Equal(ippcode.EXIT_USAGE))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Context("with environment settings", func() {
		It("should reject an unknown log level", func() {
			env[cmd.ENV_LOG_LEVEL] = "chatty"
			Expect(run(".IPPcode23\n")).To(Equal(ippcode.EXIT_USAGE))
		})

		It("should log at debug level", func() {
			env[cmd.ENV_LOG_LEVEL] = "debug"
			Expect(run(".IPPcode23\nBREAK\n")).To(Equal(ippcode.EXIT_OK))
			Expect(stderr.String()).To(ContainSubstring("accepted header"))
		})

		It("should highlight diagnostics when asked", func() {
			env[cmd.ENV_COLOUR] = "always"
			Expect(run(".IPPcode23\nDEFVAR x\n")).To(Equal(ippcode.EXIT_ARGUMENT))
			Expect(stderr.String()).To(ContainSubstring("\033[1;31m^\033[0m"))
		})

		It("should reject an unknown colour mode", func() {
			env[cmd.ENV_COLOUR] = "sometimes"
			Expect(run(".IPPcode23\n")).To(Equal(ippcode.EXIT_USAGE))
		})

		It("should print usage for --help despite an invalid environment", func() {
			env[cmd.ENV_COLOUR] = "sometimes"
			env[cmd.ENV_LOG_LEVEL] = "chatty"
			Expect(run("", "--help")).To(Equal(ippcode.EXIT_OK))
			Expect(stdout.String()).To(Equal(cmd.USAGE))
			Expect(stderr.String()).To(BeEmpty())
		})
	})
})
