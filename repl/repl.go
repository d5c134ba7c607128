/*
File    : y/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for the Y interpreter:
// an interactive session built on chzyer/readline for line editing and
// history, with fatih/color used for banner/result/error output.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/uchenily/y/eval"
	"github.com/uchenily/y/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner text and prompt shown to the user across an
// interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type Y source and press Enter; blank line submits a block.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop. Because Y blocks are delimited by
// indentation rather than braces, input is accumulated line by line and
// only submitted for parsing once a blank line closes the buffered block —
// the same multi-line-entry convention an indentation-sensitive language's
// interactive shell needs.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.New()
	ev.Writer = writer

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		trimmed := strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(trimmed) == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		if trimmed == "" {
			if buf.Len() > 0 {
				r.submit(writer, buf.String(), ev)
				buf.Reset()
			}
			continue
		}

		rl.SaveHistory(line)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

func (r *Repl) submit(writer io.Writer, src string, ev *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	prog, err := parser.Parse(src)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	if runErr := ev.Run(prog); runErr != nil {
		redColor.Fprintf(writer, "%v\n", runErr)
	}
}
