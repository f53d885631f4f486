package cli

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"totp/internal/config"
	"totp/internal/output"
)

// FormatterProvider wraps the formatter interface for kong binding.
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure. Generate is the default command,
// so a bare `totp -s github` produces a code.
type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate a TOTP code (default)"`
	Add      AddCmd      `cmd:"" help:"Register a service and store its secret"`
	Update   UpdateCmd   `cmd:"" help:"Replace the secret of an existing service"`
	Remove   RemoveCmd   `cmd:"" help:"Remove a service's secret"`
	List     ListCmd     `cmd:"" help:"List known services"`
	Config   ConfigCmd   `cmd:"" help:"Configuration commands"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// BeforeApply loads the config, resolves the output mode, and binds
// the shared dependencies into the kong context.
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return output.Persistence("Failed to load config: %v", err)
	}

	formatter := &FormatterProvider{
		Formatter: output.New(c.ResolvedOutput(cfg)),
	}

	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(&c.Globals)

	return nil
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	println("totp version " + ctx.Model.Vars()["version"])
	return nil
}
