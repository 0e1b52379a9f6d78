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
package ippcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-ippcode/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// HEADER is the dialect marker which must begin every program.
const HEADER = ".IPPcode23"

// LANGUAGE is the name of the dialect, as recorded on the root element.
const LANGUAGE = "IPPcode23"

// Config determines the dialect accepted by a translator.
type Config struct {
	// Header is the marker expected on the first (non-blank) line.
	Header string
	// Language is the name recorded on the root element of the output.
	Language string
}

// DefaultConfig returns the configuration for IPPcode23.
func DefaultConfig() Config {
	return Config{HEADER, LANGUAGE}
}

// Translator reads a program one line at a time, validating each instruction
// as it goes.  A translator is not safe for concurrent use.
type Translator struct {
	config Config
	reader *bufio.Reader
	// Number of lines read so far.
	lines int
	// Indicates whether the header has been checked.
	header bool
	// Order of the most recently returned instruction.
	order uint
}

// NewTranslator constructs a translator reading from a given input stream.
func NewTranslator(config Config, input io.Reader) *Translator {
	return &Translator{config, bufio.NewReader(input), 0, false, 0}
}

// Header checks the program begins with the expected dialect marker.  This is
// done at most once, and happens automatically on the first call to Next.
func (p *Translator) Header() error {
	if p.header {
		return nil
	}
	//
	line, err := p.readLine()
	//
	if errors.Is(err, io.EOF) {
		line = source.NewLine(p.lines+1, "")
		msg := fmt.Sprintf("missing header \"%s\"", p.config.Header)
		//
		return NewError(INVALID_HEADER, line, line.Span(), msg)
	} else if err != nil {
		return err
	} else if line.String() != p.config.Header {
		msg := fmt.Sprintf("incorrect header (expected \"%s\")", p.config.Header)
		return NewError(INVALID_HEADER, line, line.Span(), msg)
	}
	//
	log.Debugf("accepted header on line %d", line.Number())
	p.header = true
	//
	return nil
}

// Next reads and validates the next instruction.  Once the input is exhausted,
// io.EOF is returned.  After any other error, the translator should not be
// used again.
func (p *Translator) Next() (*Instruction, error) {
	if err := p.Header(); err != nil {
		return nil, err
	}
	//
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	//
	insn, err := ParseInstruction(line)
	if err != nil {
		return nil, err
	}
	// Only validated instructions are numbered, hence the order is gapless.
	p.order++
	insn.Order = p.order
	//
	log.Debugf("line %d: instruction %d (%s)", line.Number(), insn.Order, insn.Opcode)
	//
	return insn, nil
}

// readLine reads the next line which is not skipped after normalisation.
func (p *Translator) readLine() (source.Line, error) {
	for {
		text, err := p.reader.ReadString('\n')
		//
		if err != nil && !errors.Is(err, io.EOF) {
			return source.Line{}, err
		} else if err != nil && text == "" {
			return source.Line{}, io.EOF
		}
		//
		p.lines++
		//
		if text, ok := Normalize(text); ok {
			return source.NewLine(p.lines, text), nil
		}
		//
		log.Debugf("skipping blank line %d", p.lines)
	}
}

// Translate reads a program from a given input stream and writes its XML form
// to a given output stream.  Instructions are written as soon as they are
// validated.  Translation stops at the first error, in which case the output
// is incomplete.
func Translate(config Config, input io.Reader, output io.Writer) error {
	var (
		translator = NewTranslator(config, input)
		writer     = NewWriter(output)
		stats      = make(Statistics)
	)
	//
	if err := translator.Header(); err != nil {
		return err
	} else if err := writer.Begin(config.Language); err != nil {
		return err
	}
	//
	for {
		insn, err := translator.Next()
		//
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		} else if err := writer.Write(insn); err != nil {
			return err
		}
		//
		stats.Add(insn)
	}
	//
	logStatistics(translator, stats)
	//
	return writer.End()
}

// Parse reads a program from a given input stream.
func Parse(config Config, input io.Reader) (*Program, error) {
	var (
		translator = NewTranslator(config, input)
		program    = &Program{config.Language, nil}
	)
	//
	for {
		insn, err := translator.Next()
		//
		if errors.Is(err, io.EOF) {
			logStatistics(translator, program.Statistics())
			return program, nil
		} else if err != nil {
			return nil, err
		}
		//
		program.Instructions = append(program.Instructions, *insn)
	}
}

// Log a summary of a completed translation.
func logStatistics(translator *Translator, stats Statistics) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	fields := log.Fields{"instructions": translator.order, "lines": translator.lines}
	//
	for opcode, count := range stats {
		fields[strings.ToLower(opcode)] = count
	}
	//
	log.WithFields(fields).Debug("translation complete")
}
