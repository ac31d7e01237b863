package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/thunk"
	"github.com/peterh/liner"
)

const (
	promptMain = "> "
	promptCont = ". "
)

var replCommands = map[string]bool{
	":quit":   true,
	":q":      true,
	":tokens": true,
	":tree":   true,
	":help":   true,
}

const replHelp = `Enter an expression to evaluate it. Commands:
  :tokens   toggle printing the token stream
  :tree     toggle printing the syntax tree
  :quit     exit
`

func repl(cfg *thunk.Config) int {
	fmt.Printf("%s %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", name, version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	ip := cfg.Interpreter()
	color := cfg.UseColor(isTerminal(os.Stderr))
	showTokens, showTree := cfg.ShowTokens, cfg.ShowTree

	for {
		src, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if replCommands[trimmed] {
			switch trimmed {
			case ":quit", ":q":
				return 0
			case ":tokens":
				showTokens = !showTokens
				fmt.Printf("tokens: %v\n", showTokens)
			case ":tree":
				showTree = !showTree
				fmt.Printf("tree: %v\n", showTree)
			case ":help":
				fmt.Print(replHelp)
			}
			continue
		}

		tokens, err := thunk.Tokenize(src)
		if err != nil {
			thunk.Report(os.Stderr, "<repl>", src, err, color)
			continue
		}
		if showTokens {
			for _, tok := range tokens {
				fmt.Printf("  %-8s %s\n", tok.Span, tok)
			}
		}
		tree, err := thunk.Parse(tokens)
		if err != nil {
			thunk.Report(os.Stderr, "<repl>", src, err, color)
			continue
		}
		if showTree {
			fmt.Printf("  %s\n", tree)
		}
		v, err := ip.Eval(thunk.NewEnv(), tree)
		if err != nil {
			thunk.Report(os.Stderr, "<repl>", src, err, color)
			continue
		}
		fmt.Println(v)
	}
}

// readEntry reads lines until they form something that is not merely
// incomplete, so a let or a thunk can span several lines. A prompt command
// is returned as is; it would otherwise parse as an unfinished call.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() == 0 && replCommands[strings.TrimSpace(line)] {
			return line, true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		if _, err := thunk.ParseString(src); !thunk.IsIncomplete(err) {
			return src, true
		}
	}
}
