// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/regasm/cpu"
	"github.com/ezrec/regasm/display"
	"github.com/ezrec/regasm/emulator"
	"github.com/ezrec/regasm/translate"
)

var f = translate.From

var (
	ErrSourceMissing = errors.New(f("No assembly file provided or unable to read file"))
	ErrColorInvalid  = errors.New(f("-color must be auto, always or never"))
)

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// run loads the program named by args[0], applies the register overrides
// in args[1:], and executes it on emu.
// If listing is set, the assembled program is written to out instead.
func run(emu *emulator.Emulator, args []string, listing bool, out io.Writer) (err error) {
	if len(args) < 1 {
		err = ErrSourceMissing
		return
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, ErrSourceMissing.Error())
		return
	}

	emu.Reset()
	err = emu.Override(args[1:]...)
	if err != nil {
		return
	}

	asm := &cpu.Assembler{Verbose: emu.Verbose}
	prog, err := asm.Parse(bytes.NewReader(source))
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	if listing {
		_, err = fmt.Fprint(out, prog.String())
		return
	}

	emu.Program = prog

	err = emu.Run()
	if err != nil {
		return
	}

	return emu.Display.Finished(emu.Cpu)
}

func main() {
	var listing bool
	var verbose bool
	var color string

	flag.BoolVar(&listing, "l", false, "List the assembled program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&color, "color", "auto", "Colorize output: auto, always or never")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] FILE [rN=VALUE ...]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	log.SetPrefix("regasm: ")

	dpy := &display.Display{Output: os.Stdout, Error: os.Stderr}

	switch color {
	case "auto":
		dpy.Color = isTerminal(os.Stdout)
	case "always":
		dpy.Color = true
	case "never":
		dpy.Color = false
	default:
		dpy.Report(ErrColorInvalid)
		atexit.Exit(1)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Display = dpy

	// Debug breakpoints get line editing on an interactive terminal.
	if !listing && isTerminal(os.Stdin) {
		rl, err := readline.New("")
		if err != nil {
			log.Printf("readline: %v", err)
		} else {
			atexit.Register(func() { rl.Close() })
			emu.Console.Reader = rl
		}
	}

	err := run(emu, flag.Args(), listing, os.Stdout)
	if err != nil {
		dpy.Report(err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
