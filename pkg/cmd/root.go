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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-ippcode/pkg/ippcode"
	"github.com/consensys/go-ippcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NAME is the name of this executable, as shown in diagnostics and usage.
const NAME = "ippcode-parse"

// USAGE is the banner printed in response to "--help".
const USAGE = `This program translates IPPcode23 code into XML format.
Usage: ` + NAME + ` [--help] <src.ippc
`

// Streams bundles the standard streams of a process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// UsageError signals a malformed command line (or environment).
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// newRootCmd constructs the command translating standard input to standard
// output.
func newRootCmd(config Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   NAME,
		Short: "Translate IPPcode23 into XML.",
		Long: `Reads an IPPcode23 program from standard input, checks each instruction has
the right number and kind of arguments, and writes its XML representation to
standard output.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if termio.IsTerminal(cmd.InOrStdin()) {
				log.Debug("reading program from terminal (end input with Ctrl-D)")
			}
			//
			return ippcode.Translate(config.Dialect, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	//
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), USAGE)
	})
	//
	return cmd
}

// checkArgs ensures the command line is either empty or consists of "--help"
// alone.  This is checked upfront, since cobra would otherwise honour "--help"
// alongside other arguments.
func checkArgs(args []string) error {
	switch {
	case len(args) == 0 || isHelp(args):
		return nil
	case len(args) == 1:
		return &UsageError{fmt.Sprintf("incorrect argument \"%s\"", args[0])}
	default:
		return &UsageError{"incorrect number of arguments"}
	}
}

// isHelp determines whether a given command line asks for the usage banner.
func isHelp(args []string) bool {
	return len(args) == 1 && args[0] == "--help"
}

// Run translates the program on the given input stream according to a given
// command line and environment, returning the exit status.
func Run(args []string, getenv func(string) string, streams Streams) int {
	if err := checkArgs(args); err != nil {
		reportError(streams.Err, err, COLOUR_NEVER)
		return ippcode.EXIT_USAGE
	}
	// The environment cannot prevent help, in which case defaults are used.
	config, err := LoadConfig(getenv)
	//
	if err != nil && !isHelp(args) {
		reportError(streams.Err, &UsageError{err.Error()}, COLOUR_NEVER)
		return ippcode.EXIT_USAGE
	}
	// Configure logging
	log.SetOutput(streams.Err)
	log.SetLevel(config.Level)
	//
	cmd := newRootCmd(config)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	//
	if err := cmd.Execute(); err != nil {
		return reportError(streams.Err, err, config.Colour)
	}
	//
	return ippcode.EXIT_OK
}

// Execute runs the translator over the process's standard streams and then
// exits.  It only needs to happen once, and is called by main.main().
func Execute() {
	stderr := bufferedFile{bufio.NewWriter(os.Stderr), os.Stderr}
	// Diagnostics are buffered, so must be flushed on the way out.
	atexit.Register(func() {
		if err := stderr.Flush(); err != nil {
			log.Errorln(err)
		}
	})
	//
	status := Run(os.Args[1:], os.Getenv, Streams{os.Stdin, os.Stdout, stderr})
	//
	atexit.Exit(status)
}

// bufferedFile buffers writes to a file, whilst still exposing the file
// descriptor so terminals can be detected.
type bufferedFile struct {
	*bufio.Writer
	file *os.File
}

func (p bufferedFile) Fd() uintptr {
	return p.file.Fd()
}

// reportError prints a diagnostic for a given error and determines the
// corresponding exit status.
func reportError(w io.Writer, err error, colour ColourMode) int {
	var (
		ippErr   *ippcode.Error
		usageErr *UsageError
	)
	//
	switch {
	case errors.As(err, &ippErr):
		printSyntaxError(w, ippErr.Cause(), highlight(w, colour))
		return ippErr.ExitCode()
	case errors.As(err, &usageErr):
		fmt.Fprintf(w, "%s: %s\n", NAME, usageErr.Error())
		return ippcode.EXIT_USAGE
	default:
		fmt.Fprintf(w, "%s: %s\n", NAME, err.Error())
		return ippcode.EXIT_INTERNAL
	}
}
