/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command first prints the first element of its input.
//
// Usage:
//
//	first [--timeout DURATION] [--file PATH] [VALUE ...]
//
// If any values are provided, the first is printed. Otherwise, the first line
// is read from the file (or stdin). With a timeout, the line is received
// from a background reader, and the command fails if it takes too long.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/joeycumines/go-first"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

type args struct {
	Timeout time.Duration `arg:"-t,--timeout" help:"wait at most this long for the first line"`
	File    string        `arg:"-f,--file" help:"read lines from this file instead of stdin"`
	Values  []string      `arg:"positional" help:"print the first of these instead of reading input"`
}

func (args) Description() string {
	return "first prints the first element of its input"
}

func main() {
	os.Exit(run(context.Background(), newLogger(os.Stderr), os.Args[1:], os.Stdin, os.Stdout))
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "first: ", 0)
}

func run(ctx context.Context, logger *log.Logger, argv []string, stdin io.Reader, stdout io.Writer) int {
	var cfg args
	parser, err := arg.NewParser(arg.Config{Program: "first"}, &cfg)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	if err := parser.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			parser.WriteHelp(stdout)
			return exitOK
		}
		parser.WriteUsage(logger.Writer())
		logger.Print(err)
		return exitUsage
	}

	value, err := cfg.resolve(ctx, stdin)
	switch {
	case errors.Is(err, first.ErrExhausted):
		logger.Print("no input")
		return exitFailure
	case err != nil:
		logger.Print(err)
		return exitFailure
	}

	if _, err := fmt.Fprintln(stdout, value); err != nil {
		logger.Print(err)
		return exitFailure
	}
	return exitOK
}

func (x *args) resolve(ctx context.Context, stdin io.Reader) (string, error) {
	if len(x.Values) != 0 {
		return first.OfSlice(x.Values)
	}

	r := stdin
	if x.File != "" {
		f, err := os.Open(x.File)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	if x.Timeout <= 0 {
		return first.OfResults(lines(r))
	}

	ctx, cancel := context.WithTimeout(ctx, x.Timeout)
	defer cancel()
	return first.Recv(ctx, receiveLines(ctx, r))
}

// lines reads r lazily, a line per iteration, ending on EOF. Nothing past the
// newline of the last yielded line is read from r.
func lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := readLine(r)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// readLine reads a byte at a time up to and including the next newline, which
// is stripped along with any preceding carriage return. A final line without a
// newline is returned as-is, and io.EOF only once no bytes remain.
func readLine(r io.Reader) (string, error) {
	var (
		line []byte
		b    [1]byte
	)
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				return string(bytes.TrimSuffix(line, []byte{'\r'})), nil
			}
			line = append(line, b[0])
		}
		if err == io.EOF && len(line) != 0 {
			return string(line), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// receiveLines sends lines from r on the returned channel, which is closed on
// EOF, read error, or ctx cancel. Read errors are not reported.
//
// The reader goroutine may outlive ctx, while blocked reading r. It reads at
// most one line past the last one received, while blocked sending it.
func receiveLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for line, err := range lines(r) {
			if err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case ch <- line:
			}
		}
	}()
	return ch
}
