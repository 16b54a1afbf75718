package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
)

var Version string

func version() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}

	return info.Main.Version
}

type CLI struct {
	stdout     io.Writer
	stderr     io.Writer
	stdin      io.Reader
	isTerminal bool
}

func NewCLI(stdout, stderr io.Writer, stdin io.Reader, isTerminal bool) *CLI {
	return &CLI{
		stdout:     stdout,
		stderr:     stderr,
		stdin:      stdin,
		isTerminal: isTerminal,
	}
}

func (c *CLI) Run(args []string) int {
	opts, err := parseFlags(args[1:])
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to parse flags: %v\n", err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(c.stdout, "ringq version %s; %s\n", version(), runtime.Version())
		return 0
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	in := c.stdin
	prompt := c.isTerminal
	if opts.scriptFile != "" {
		f, err := os.Open(opts.scriptFile)
		if err != nil {
			fmt.Fprintf(c.stderr, "failed to open script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
		prompt = false
	}

	con := newConsole(c.stdout, logger)
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(c.stdout, "ringq> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := con.dispatch(line)
		if err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
		}
		if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(c.stderr, "read error: %v\n", err)
		return 1
	}
	return 0
}
