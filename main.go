package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"totp/internal/cli"
	"totp/internal/output"
)

var version = "dev"

func main() {
	cliInstance := &cli.CLI{}
	parser := kong.Must(cliInstance,
		kong.Name("totp"),
		kong.Description("TOTP code generator for the command line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("service", cli.ServicePredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		exitWith(err) // config load failures carry their own code
		parser.FatalIfErrorf(err)
	}

	if err := ctx.Run(); err != nil {
		exitWith(err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitFailure)
	}
}

// exitWith terminates the process when err is a structured CLIError;
// anything else falls through to the caller. Error output stays plain
// regardless of output mode so scripts can match on it.
func exitWith(err error) {
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		return
	}

	formatter := output.New("plain")
	formatter.PrintError(err)
	if cliErr.Hint != "" {
		formatter.PrintHint(cliErr.Hint)
	}
	os.Exit(cliErr.ExitCode)
}
