package cli

import (
	"fmt"
	"os"
	"time"

	"totp/internal/clip"
	"totp/internal/config"
	"totp/internal/index"
	"totp/internal/output"
	"totp/internal/secrets"
	"totp/internal/totp"
)

// cmdEnv bundles the stateful collaborators every command operates
// on: credential store, service index, clock, secret prompt, and
// clipboard. Commands receive it fully built, so tests substitute
// in-memory fakes without touching a real keyring.
type cmdEnv struct {
	store      secrets.Store
	index      *index.Index
	out        output.Formatter
	now        func() time.Time
	readSecret func(prompt string) (string, error)
	clip       clip.Clipboard
	debug      bool
}

// newEnv wires the real collaborators.
func newEnv(fp *FormatterProvider, globals *Globals) (*cmdEnv, error) {
	store, err := secrets.NewStore()
	if err != nil {
		return nil, output.Persistence("Failed to open credential store: %v", err)
	}

	idx, err := index.Load(index.DefaultPath())
	if err != nil {
		return nil, output.Persistence("Failed to load service index: %v", err)
	}

	return &cmdEnv{
		store:      store,
		index:      idx,
		out:        fp.Formatter,
		now:        time.Now,
		readSecret: readSecret,
		clip:       clip.Detect(),
		debug:      globals.Debug,
	}, nil
}

func (e *cmdEnv) debugf(format string, args ...any) {
	if e.debug {
		fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
	}
}

// promptSecret reads the secret-or-URL interactively and reduces it to
// a bare secret. Empty input and secret-less provisioning URIs are
// user-input errors; nothing has been mutated at this point.
func (e *cmdEnv) promptSecret() (string, error) {
	input, err := e.readSecret("Enter the secret or URL: ")
	if err != nil {
		return "", output.UserInput("Failed to read secret: %v", err)
	}
	if input == "" {
		return "", output.UserInput("Secret or URL is required")
	}

	secret, err := totp.SecretFromInput(input)
	if err != nil {
		return "", output.UserInput("%v", err)
	}

	e.debugf("using secret %s", maskSecret(secret))
	return secret, nil
}

// requireService returns the -s flag value, a user-input error if
// absent. Used by the mutating commands, which never fall back to the
// configured default service.
func requireService(globals *Globals) (string, error) {
	if globals.Service == "" {
		return "", output.UserInput("Service name is required").
			WithHint("pass -s SERVICE")
	}
	return globals.Service, nil
}

// resolveService is requireService plus the default_service config
// fallback; only generate uses it.
func resolveService(globals *Globals, cfg *config.Config) (string, error) {
	if globals.Service != "" {
		return globals.Service, nil
	}
	if cfg.DefaultService != "" {
		return cfg.DefaultService, nil
	}
	return "", output.UserInput("Service name is required").
		WithHint("pass -s SERVICE or set default_service in the config")
}
