package cli

import "flag"

type options struct {
	scriptFile  string
	verbose     bool
	showVersion bool
}

func parseFlags(args []string) (options, error) {
	opt := options{}
	fs := flag.NewFlagSet("ringq", flag.ContinueOnError)
	fs.StringVar(&opt.scriptFile, "f", "", "read commands from a file instead of stdin")
	fs.BoolVar(&opt.verbose, "verbose", false, "verbose logging")
	fs.BoolVar(&opt.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opt, nil
}
