/*
File    : y/cmd/y/main.go
*/

// Package main is the entry point for the Y interpreter: a script runner
// when given a file, an interactive REPL otherwise.
package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"github.com/uchenily/y/eval"
	"github.com/uchenily/y/internal/visualize"
	"github.com/uchenily/y/lexer"
	"github.com/uchenily/y/parser"
	"github.com/uchenily/y/repl"
)

const (
	version = "v0.1.0"
	banner  = `
  __  __
   \ \/ /
    \  /
    /  \
   /_/\_\
`
	line   = "----------------------------------------------------------------"
	prompt = "y >>> "
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	debug := flag.Bool("debug", false, "dump the token stream, and the activation-record stack on error")
	showAST := flag.Bool("ast", false, "also render the AST to --ast-file via the DOT visualiser")
	astFile := flag.String("ast-file", "astree.dot", "DOT-graph AST output path, used with --ast")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		repler := repl.NewRepl(banner, version, line, prompt)
		repler.Start(os.Stdout)
		return
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", args[0], err)
		os.Exit(1)
	}

	runFile(string(source), *debug, *showAST, *astFile)
}

func runFile(source string, debug, showAST bool, astFile string) {
	if debug {
		dumpTokens(source)
	}

	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if showAST {
		dot := visualize.New().Generate(prog)
		if err := os.WriteFile(astFile, []byte(dot), 0o644); err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] could not write %q: %v\n", astFile, err)
			os.Exit(1)
		}
		yellowColor.Fprintf(os.Stdout, "wrote AST graph to %s\n", astFile)
	}

	ev := eval.New()
	ev.Writer = os.Stdout
	if runErr := ev.Run(prog); runErr != nil {
		redColor.Fprintf(os.Stderr, "%v\n", runErr)
		if debug {
			cyanColor.Fprintln(os.Stderr, "activation-record stack at failure:")
			for _, frame := range ev.DebugStack() {
				cyanColor.Fprintf(os.Stderr, "  %s\n", frame)
			}
		}
		os.Exit(1)
	}
}

// dumpTokens lexes source independently of the parser (which drives its own
// lexer) and prints every token, for --debug.
func dumpTokens(source string) {
	cyanColor.Fprintln(os.Stdout, line)
	lex := lexer.NewLexer(source)
	tokens, err := lex.ConsumeTokens()
	for _, tok := range tokens {
		cyanColor.Fprintf(os.Stdout, "  %s\n", tok.String())
	}
	if err != nil {
		cyanColor.Fprintf(os.Stdout, "  (lexing stopped early: %v)\n", err)
	}
	cyanColor.Fprintln(os.Stdout, line)
}
