package cli

import (
	"errors"
	"fmt"

	"totp/internal/config"
	"totp/internal/index"
	"totp/internal/output"
	"totp/internal/secrets"
	"totp/internal/totp"
)

// The five commands form a small state machine over two stores: the
// credential store holds service->secret, the index holds the ordered
// name list. They are updated as two independent steps, store first,
// so a failure in between leaves at worst a secret without an index
// entry; add/update repair index membership on the next write, and
// generate degrades an indexed-but-empty entry to "Key not found".

// GenerateCmd produces the current code for a service.
type GenerateCmd struct {
	Copy bool `help:"Copy the code to the clipboard" short:"c"`
}

func (cmd *GenerateCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	service, err := resolveService(globals, cfg)
	if err != nil {
		return err
	}
	env, err := newEnv(fp, globals)
	if err != nil {
		return err
	}
	return cmd.run(env, service)
}

func (cmd *GenerateCmd) run(env *cmdEnv, service string) error {
	secret, err := env.store.Get(service)
	switch {
	case errors.Is(err, secrets.ErrNotFound), err == nil && secret == "":
		// An empty entry is a logically deleted service: present in
		// the store, but no usable key.
		return output.Precondition("Key not found").
			WithHint(fmt.Sprintf("run 'totp add -s %s' to register the service", service))
	case err != nil:
		return output.Persistence("Failed to read credential store: %v", err)
	}

	now := env.now()
	code, err := totp.Generate(secret, now)
	if err != nil {
		return output.Generation("Failed to generate code for %s: %v", service, err)
	}

	env.out.PrintCode(service, code, totp.Remaining(now))

	if cmd.Copy {
		if err := env.clip.Copy(code); err != nil {
			// Best effort only: a missing clipboard skips the copy,
			// never the code.
			env.debugf("clipboard copy skipped: %v", err)
		} else {
			env.out.PrintMessage("Code copied to clipboard")
		}
	}

	return nil
}

// AddCmd registers a new service.
type AddCmd struct{}

func (cmd *AddCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	service, err := requireService(globals)
	if err != nil {
		return err
	}
	env, err := newEnv(fp, globals)
	if err != nil {
		return err
	}
	return cmd.run(env, service)
}

func (cmd *AddCmd) run(env *cmdEnv, service string) error {
	secret, err := env.promptSecret()
	if err != nil {
		return err
	}

	existing, err := env.store.Get(service)
	switch {
	case err == nil && existing != "":
		return output.Precondition("Service already exists, use update instead")
	case err != nil && !errors.Is(err, secrets.ErrNotFound):
		return output.Persistence("Failed to read credential store: %v", err)
	}

	if err := env.store.Set(service, secret); err != nil {
		return output.Persistence("Failed to store secret: %v", err)
	}
	if !env.index.Contains(service) {
		if err := env.index.Add(service); err != nil {
			return output.Persistence("Secret stored, but failed to update service index: %v", err)
		}
	}

	env.out.PrintMessage("Key added for service %s", service)
	return nil
}

// UpdateCmd replaces the secret of an existing service.
type UpdateCmd struct{}

func (cmd *UpdateCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	service, err := requireService(globals)
	if err != nil {
		return err
	}
	env, err := newEnv(fp, globals)
	if err != nil {
		return err
	}
	return cmd.run(env, service)
}

func (cmd *UpdateCmd) run(env *cmdEnv, service string) error {
	secret, err := env.promptSecret()
	if err != nil {
		return err
	}

	// A logically deleted entry (empty string) still counts as
	// present, so update can resurrect it.
	if _, err := env.store.Get(service); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return output.Precondition("Service not found").
				WithHint("use add to register a new service")
		}
		return output.Persistence("Failed to read credential store: %v", err)
	}

	if err := env.store.Set(service, secret); err != nil {
		return output.Persistence("Failed to store secret: %v", err)
	}
	if !env.index.Contains(service) {
		if err := env.index.Add(service); err != nil {
			return output.Persistence("Secret stored, but failed to update service index: %v", err)
		}
	}

	env.out.PrintMessage("Key updated for service %s", service)
	return nil
}

// RemoveCmd logically deletes a service's secret and drops it from
// the index.
type RemoveCmd struct{}

func (cmd *RemoveCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	service, err := requireService(globals)
	if err != nil {
		return err
	}
	env, err := newEnv(fp, globals)
	if err != nil {
		return err
	}
	return cmd.run(env, service)
}

func (cmd *RemoveCmd) run(env *cmdEnv, service string) error {
	if _, err := env.store.Get(service); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return output.Precondition("Service not found")
		}
		return output.Persistence("Failed to read credential store: %v", err)
	}

	// The entry is cleared, not erased, matching what existing
	// installations expect to find in the keyring.
	if err := env.store.Set(service, ""); err != nil {
		return output.Persistence("Failed to clear secret: %v", err)
	}
	if env.index.Contains(service) {
		if err := env.index.Remove(service); err != nil && !errors.Is(err, index.ErrNotFound) {
			return output.Persistence("Secret cleared, but failed to update service index: %v", err)
		}
	}

	env.out.PrintMessage("Key removed for service %s", service)
	return nil
}

// ListCmd prints the known service names. It reads only the index and
// never opens the credential store.
type ListCmd struct{}

func (cmd *ListCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	idx, err := index.Load(index.DefaultPath())
	if err != nil {
		return output.Persistence("Failed to load service index: %v", err)
	}
	return cmd.run(idx, fp.Formatter)
}

func (cmd *ListCmd) run(idx *index.Index, out output.Formatter) error {
	out.PrintServices(idx.List())
	return nil
}
