// Package io provides the operator console for the regasm emulator.
//
// The console is the only point where a running program waits on the
// outside world: a debug breakpoint blocks until the operator enters a line.
package io

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// LineReader reads a single line of operator input, without the line terminator.
// It is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Console reads operator input a line at a time.
// If Reader is set, it is used in preference to Input.
type Console struct {
	Input  io.Reader
	Reader LineReader

	scanner *bufio.Scanner
}

// Await blocks until the operator enters a line, and returns it.
// End of input, or any read failure, is reported as ErrConsoleClosed.
func (con *Console) Await() (line string, err error) {
	if con.Reader != nil {
		line, err = con.Reader.Readline()
		if err != nil {
			err = errors.Wrap(ErrConsoleClosed, err.Error())
		}
		return
	}

	if con.Input == nil {
		err = ErrConsoleClosed
		return
	}

	if con.scanner == nil {
		con.scanner = bufio.NewScanner(con.Input)
	}

	if !con.scanner.Scan() {
		err = con.scanner.Err()
		if err != nil {
			err = errors.Wrap(ErrConsoleClosed, err.Error())
		} else {
			err = ErrConsoleClosed
		}
		return
	}

	line = con.scanner.Text()
	return
}
