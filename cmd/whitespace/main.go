// This file is part of whitespace.
//
// Copyright 2026 The Whitespace Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command whitespace parses, resolves, runs and inspects Whitespace
// programs, and round-trips them through the .wsc binary format.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CensoredUsername/whitespace/internal/wsi"
	"github.com/CensoredUsername/whitespace/serialize"
	"github.com/CensoredUsername/whitespace/vm"
	"github.com/CensoredUsername/whitespace/wsc"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// exitError carries the process exit code a failure should produce, per
// spec: 1 for a malformed program (parse/resolve/serialization), 2 for a
// runtime fault during Execute.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func malformed(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: 1, err: err}
}

func fault(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: 2, err: err}
}

func main() {
	app := &cli.App{
		Name:  "whitespace",
		Usage: "parse, resolve, run and inspect Whitespace programs",
		Commands: []*cli.Command{
			runCommand,
			buildCommand,
			execCommand,
			dumpCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		ee, ok := err.(*exitError)
		if !ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%+v\n", ee.err)
		os.Exit(ee.code)
	}
}

var inOutFlags = []cli.Flag{
	&cli.StringFlag{Name: "in", Usage: "read inputchar/inputnum from `FILE` instead of stdin"},
	&cli.StringFlag{Name: "out", Usage: "write printchar/printnum to `FILE` instead of stdout"},
	&cli.BoolFlag{Name: "raw", Usage: "put the terminal in raw mode for single-keystroke input"},
	&cli.BoolFlag{Name: "stats", Usage: "print instruction count and wall-clock time on exit"},
}

func openStreams(c *cli.Context) (in io.ReadCloser, out io.WriteCloser, rawtty bool, teardown func(), err error) {
	in = io.NopCloser(os.Stdin)
	out = nopWriteCloser{os.Stdout}

	if name := c.String("in"); name != "" {
		f, ferr := os.Open(name)
		if ferr != nil {
			return nil, nil, false, nil, malformed(errors.Wrap(ferr, "opening input file"))
		}
		in = f
	} else if c.Bool("raw") {
		restore, rerr := setRawIO()
		if rerr == nil {
			rawtty = true
			teardown = restore
		}
	}

	if name := c.String("out"); name != "" {
		f, ferr := os.Create(name)
		if ferr != nil {
			return nil, nil, false, nil, malformed(errors.Wrap(ferr, "creating output file"))
		}
		out = f
	}

	return in, out, rawtty, teardown, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compileFile(path string) (*vm.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading source")
	}
	return wsc.Compile(src)
}

func runProgram(c *cli.Context, p *vm.Program) error {
	in, out, _, teardown, err := openStreams(c)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()
	if teardown != nil {
		defer teardown()
	}

	bufOut := bufio.NewWriter(out)
	defer bufOut.Flush()

	start := time.Now()
	res, err := wsc.Execute(p, in, bufOut)
	elapsed := time.Since(start)

	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}

	if c.Bool("stats") {
		fmt.Fprintf(os.Stderr, "executed %d instructions in %v\n", res.InstructionCount, elapsed)
	}

	if err != nil {
		return fault(err)
	}
	return nil
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "parse, resolve and execute a Whitespace source file",
	ArgsUsage: "<file.ws>",
	Flags:     inOutFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return malformed(errors.New("run expects exactly one source file"))
		}
		p, err := compileFile(c.Args().Get(0))
		if err != nil {
			return malformed(err)
		}
		return runProgram(c, p)
	},
}

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "parse, resolve and serialize a Whitespace source file to .wsc",
	ArgsUsage: "<file.ws>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "o", Usage: "output `FILE`, defaults to the source name with .wsc appended"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return malformed(errors.New("build expects exactly one source file"))
		}
		src := c.Args().Get(0)
		p, err := compileFile(src)
		if err != nil {
			return malformed(err)
		}
		out := c.String("o")
		if out == "" {
			out = src + ".wsc"
		}
		f, err := os.Create(out)
		if err != nil {
			return malformed(errors.Wrap(err, "creating output file"))
		}
		defer f.Close()
		if err := serialize.Write(f, p); err != nil {
			return malformed(errors.Wrap(err, "serializing program"))
		}
		return nil
	},
}

var execCommand = &cli.Command{
	Name:      "exec",
	Usage:     "deserialize and execute a .wsc file directly",
	ArgsUsage: "<file.wsc>",
	Flags:     inOutFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return malformed(errors.New("exec expects exactly one .wsc file"))
		}
		f, err := os.Open(c.Args().Get(0))
		if err != nil {
			return malformed(errors.Wrap(err, "opening program file"))
		}
		p, err := serialize.Read(f)
		f.Close()
		if err != nil {
			return malformed(errors.Wrap(err, "deserializing program"))
		}
		return runProgram(c, p)
	},
}

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "parse, resolve and print a disassembly listing",
	ArgsUsage: "<file.ws>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return malformed(errors.New("dump expects exactly one source file"))
		}
		p, err := compileFile(c.Args().Get(0))
		if err != nil {
			return malformed(err)
		}
		w := wsi.NewErrWriter(os.Stdout)
		wsc.Dump(p, w)
		return malformed(w.Err)
	},
}
