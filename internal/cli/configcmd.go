package cli

import (
	"fmt"
	"os"

	"totp/internal/config"
	"totp/internal/output"
)

// ConfigCmd holds the configuration subcommands.
type ConfigCmd struct {
	Get   ConfigGetCmd   `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd   `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd `cmd:"" help:"Remove a configuration value"`
	List  ConfigListCmd  `cmd:"" help:"List all configuration values"`
	Path  ConfigPathCmd  `cmd:"" help:"Show config file path"`
}

// ConfigGetCmd prints one config value.
type ConfigGetCmd struct {
	Key string `arg:"" help:"Config key (default_service, default_output)"`
}

func (cmd *ConfigGetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	value, err := cfg.Get(cmd.Key)
	if err != nil {
		return output.UserInput("Unknown config key: %s", cmd.Key)
	}
	fmt.Println(value)
	return nil
}

// ConfigSetCmd sets and persists one config value.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key to set"`
	Value string `arg:"" help:"Value to set"`
}

func (cmd *ConfigSetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if cmd.Key == "default_output" {
		switch cmd.Value {
		case "json", "plain", "rich":
		default:
			return output.UserInput("Invalid output mode: %s. Valid: json, plain, rich", cmd.Value)
		}
	}

	if _, err := cfg.Get(cmd.Key); err != nil {
		return output.UserInput("Unknown config key: %s", cmd.Key)
	}
	if err := cfg.Set(cmd.Key, cmd.Value); err != nil {
		return output.Persistence("Failed to save config: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Set %s = %s\n", cmd.Key, cmd.Value)
	return nil
}

// ConfigUnsetCmd clears one config value.
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Config key to remove"`
}

func (cmd *ConfigUnsetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if _, err := cfg.Get(cmd.Key); err != nil {
		return output.UserInput("Unknown config key: %s", cmd.Key)
	}
	if err := cfg.Unset(cmd.Key); err != nil {
		return output.Persistence("Failed to save config: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Unset %s\n", cmd.Key)
	return nil
}

// ConfigListCmd prints all config keys and values.
type ConfigListCmd struct{}

func (cmd *ConfigListCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	for _, key := range cfg.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("%s = %s\n", key, value)
	}
	return nil
}

// ConfigPathCmd prints the config file location.
type ConfigPathCmd struct{}

func (cmd *ConfigPathCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	fmt.Println(config.ConfigPath())
	return nil
}
