package main

import (
	"os"

	"github.com/NOVBobLee/ringq/internal/cli"
	"github.com/NOVBobLee/ringq/internal/term"
)

func main() {
	cl := cli.NewCLI(os.Stdout, os.Stderr, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
	os.Exit(cl.Run(os.Args))
}
