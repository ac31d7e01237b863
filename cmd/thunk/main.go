package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/thunk"
)

const name = "thunk"

const version = "0.1.0"

type options struct {
	config   string
	maxDepth int
	color    string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "path to config file (default $"+thunk.ConfigEnv+" or ~/.thunk.yml)")
	fs.IntVar(&o.maxDepth, "max-depth", 0, "maximum evaluation depth (overrides config)")
	fs.StringVar(&o.color, "color", "", "color diagnostics: auto, always or never (overrides config)")
}

func (o *options) load() *thunk.Config {
	cfg, err := thunk.LoadConfig(o.config)
	if err != nil {
		log.Fatal(err)
	}
	if o.maxDepth > 0 {
		cfg.MaxDepth = o.maxDepth
	}
	if o.color != "" {
		cfg.Color = thunk.ColorMode(o.color)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// flagStatus maps a FlagSet parse error to an exit status; -h is not a
// failure.
func flagStatus(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %[1]s tokenize <file>     Print tokens, syntax tree and result.
  %[1]s run <file>          Evaluate a program and print its result.
  %[1]s repl                Start the interactive prompt.
  %[1]s examples [name]     List bundled examples, or run one.
  %[1]s version             Print the version.

With no command, %[1]s starts the prompt when stdin is a terminal and
otherwise runs the program read from stdin.
`, name)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(name + ": ")

	if len(os.Args) < 2 {
		var opts options
		cfg := opts.load()
		if isTerminal(os.Stdin) {
			os.Exit(repl(cfg))
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(execute(cfg, "<stdin>", string(src), os.Stdout, os.Stderr, cfg.ShowTokens, cfg.ShowTree))
	}

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "tokenize":
		os.Exit(cmdFile(cmd, args, true))
	case "run":
		os.Exit(cmdFile(cmd, args, false))
	case "repl":
		os.Exit(cmdRepl(args))
	case "examples":
		os.Exit(cmdExamples(args))
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", name, cmd)
		usage()
		os.Exit(2)
	}
}

func cmdFile(cmd string, args []string, verbose bool) int {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	var opts options
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		return flagStatus(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s %s [flags] <file>\n", name, cmd)
		return 2
	}
	cfg := opts.load()

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Print(err)
		return 1
	}
	return execute(cfg, fs.Arg(0), string(b), os.Stdout, os.Stderr,
		verbose || cfg.ShowTokens, verbose || cfg.ShowTree)
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	var opts options
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		return flagStatus(err)
	}
	return repl(opts.load())
}

func cmdExamples(args []string) int {
	fs := flag.NewFlagSet("examples", flag.ContinueOnError)
	var opts options
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		return flagStatus(err)
	}
	cfg := opts.load()

	if fs.NArg() == 0 {
		examples, err := thunk.LoadExamples()
		if err != nil {
			log.Print(err)
			return 1
		}
		for _, ex := range examples {
			fmt.Println(ex.Name)
		}
		return 0
	}

	ex, err := thunk.FindExample(fs.Arg(0))
	if err != nil {
		log.Print(err)
		return 1
	}
	fmt.Print(ex.Source)
	return execute(cfg, ex.Name+".thk", ex.Source, os.Stdout, os.Stderr, cfg.ShowTokens, cfg.ShowTree)
}

// execute runs src through every stage, printing the requested
// intermediate forms and the result to out. Failures are reported to errw
// and yield exit status 1.
func execute(cfg *thunk.Config, file, src string, out, errw io.Writer, showTokens, showTree bool) int {
	color := cfg.UseColor(isTerminal(os.Stderr))
	fail := func(err error) int {
		thunk.Report(errw, file, src, err, color)
		return 1
	}

	tokens, err := thunk.Tokenize(src)
	if err != nil {
		return fail(err)
	}
	if showTokens {
		fmt.Fprintln(out, "tokens:")
		for _, tok := range tokens {
			fmt.Fprintf(out, "  %-8s %s\n", tok.Span, tok)
		}
	}

	tree, err := thunk.Parse(tokens)
	if err != nil {
		return fail(err)
	}
	if showTree {
		fmt.Fprintf(out, "tree:\n  %s\n", tree)
	}

	v, err := cfg.Interpreter().Run(tree)
	if err != nil {
		return fail(err)
	}
	if showTokens || showTree {
		fmt.Fprintf(out, "result:\n  %s\n", v)
	} else {
		fmt.Fprintln(out, v)
	}
	return 0
}
