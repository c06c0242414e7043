package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/AmmarAbouZor/crafting-lox/lox"
)

const (
	historyFile = ".lox_history"
	prompt      = "> "
)

func main() {
	args := os.Args[1:]
	switch len(args) {
	case 0:
		os.Exit(runPrompt())
	case 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(64)
	}
}

func runFile(path string) int {
	runner := lox.New()
	err := runner.RunFile(path)
	if err == nil {
		return 0
	}
	var rerr *lox.RuntimeError
	if errors.As(err, &rerr) {
		return 70
	}
	var oserr *os.PathError
	if errors.As(err, &oserr) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	// scan, parse and resolve errors were already reported.
	return 65
}

// runPrompt runs the interactive session. One runner lives for the whole
// session, so globals defined on earlier lines stay visible; an error on one
// line never ends the session.
func runPrompt() int {
	fmt.Println("Lox REPL. Ctrl+C cancels input, Ctrl+D or :quit exits.")

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

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	runner := lox.New()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return 0
		}

		// errors are already printed by the runner; keep going.
		_ = runner.Run(line)
		ln.AppendHistory(line)
	}
}
