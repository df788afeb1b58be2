// Command eerolang runs eerolang scripts and hosts a small REPL.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	eerolang "github.com/eero-lehtinen/advent-of-code-2025"
)

const (
	appName     = "eerolang"
	historyFile = ".eerolang_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("eerolang %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", eerolang.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	// debug mode: if DEBUG environment variable is set, enable debug logging
	if _, ok := os.LookupEnv("DEBUG"); ok {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(eerolang.Version)
	case "-h", "--help", "help":
		usage()
	default:
		// Bare `eerolang <file>` is shorthand for `eerolang run <file>`.
		os.Exit(cmdRun(os.Args[1:]))
	}
}

func usage() {
	fmt.Printf(`eerolang %s (built %s)

Usage:
  %s <file>          Run a script.
  %s run <file>      Run a script.
  %s repl            Start the REPL.
  %s version         Print the compiled version.

`, eerolang.Version, eerolang.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	ip := eerolang.NewInterpreter()
	if err := ip.RunSource(file, string(src)); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := eerolang.NewInterpreter()

	for {
		code, err := ln.Prompt(promptMain)
		if err != nil {
			// Ctrl+D or Ctrl+C ends the session.
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(code)
		if err := evalLine(ip, code); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}
}

// evalLine runs one REPL input against the persistent interpreter and echoes
// the bound value when the input was a single assignment.
func evalLine(ip *eerolang.Interpreter, code string) error {
	block, err := eerolang.ParseSource(code)
	if err != nil {
		return eerolang.WrapErrorWithName(err, "<repl>", code)
	}
	if err := ip.Run(block); err != nil {
		return eerolang.WrapErrorWithName(err, "<repl>", code)
	}
	if len(block) == 1 {
		if a, ok := block[0].(*eerolang.AssignStmt); ok {
			if v, found := ip.Get(a.Name); found {
				fmt.Println(blue(a.Name + " = " + eerolang.FormatValue(v)))
			}
		}
	}
	return nil
}
