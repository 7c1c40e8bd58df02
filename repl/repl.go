/*
File    : lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Lox interpreter.
One Interpreter persists across every line entered, so top-level
definitions accumulate across a session (spec.md §4.5). The REPL uses
readline for line editing/history and colored diagnostics, grounded on
the teacher's repl.Repl (_examples/akashmaji946-go-mix/repl/repl.go),
generalized from Go-Mix's evaluator/parser to Lox's.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output: blue for separators, yellow for the
// version/author/license line, red for errors, green for the banner, cyan
// for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given presentation fields.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Press Ctrl+D (EOF) or type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, parse it, evaluate it against a
// persistent Interpreter, print any diagnostics, repeat — until
// EOF or '.exit' (spec.md §4.5 requires EOF-exit; '.exit' is kept as a
// convenience alias, SPEC_FULL.md §10.2).
//
// reader/writer are wired directly into readline's own Stdin/Stdout
// (SPEC_FULL.md §10.3): a plain *os.File for the local REPL, or a
// net.Conn for a server-mode session, so a remote client actually sees
// the prompt and has its keystrokes read, rather than readline silently
// falling back to the server process's own controlling terminal.
func (r *Repl) Start(reader io.ReadCloser, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  reader,
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := eval.New()
	interp.SetOutput(writer)
	interp.SetInput(reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, interp)
	}
}

// evalLine parses and evaluates one line of input, printing diagnostics
// for lex/parse errors (spec.md §4.2, "evaluation does not proceed" once
// any are collected) or the runtime error from evaluation. Result values
// are not echoed; only print/println statements write output.
func (r *Repl) evalLine(writer io.Writer, line string, interp *eval.Interpreter) {
	p := parser.New(line)
	program := p.Parse()

	if p.HasErrors() {
		for _, lexErr := range p.LexErrors() {
			redColor.Fprintf(writer, "%s\n", lexErr.Error())
		}
		for _, parseErr := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", parseErr.Error())
		}
		return
	}

	if err := interp.Run(program); err != nil {
		redColor.Fprintf(writer, "%s\n", err.String())
	}
}
