package cli

import (
	"os"

	"golang.org/x/term"

	"totp/internal/config"
)

// Globals holds flags shared by all commands.
type Globals struct {
	Service string `help:"Service name" short:"s" predictor:"service"`
	Debug   bool   `help:"Enable debug logging" short:"d" env:"TOTP_DEBUG"`
	Output  string `help:"Output format" short:"o" default:"auto" enum:"json,plain,rich,auto" env:"TOTP_OUTPUT"`
}

// ResolvedOutput returns the effective output mode: explicit flag,
// then config, then TTY detection (rich on a terminal, plain in a
// pipe).
func (g *Globals) ResolvedOutput(cfg *config.Config) string {
	mode := g.Output
	if mode == "auto" && cfg.DefaultOutput != "" {
		mode = cfg.DefaultOutput
	}
	if mode != "auto" {
		return mode
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}
	return "plain"
}
