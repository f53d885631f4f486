// Package clip wraps the system clipboard as an optional capability.
// Environments without one (headless servers, minimal containers) get
// a no-op implementation picked once at startup, so command logic
// never probes for clipboard support itself.
package clip

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned by the no-op implementation.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard copies text for the user. Copy failures are reported, not
// fatal; callers degrade to printing only.
type Clipboard interface {
	Copy(text string) error
}

// Detect returns the system clipboard when one is usable, otherwise a
// no-op.
func Detect() Clipboard {
	if clipboard.Unsupported {
		return Noop{}
	}
	return system{}
}

type system struct{}

func (system) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Noop is the absent-clipboard implementation. Exported for tests and
// for wiring non-interactive invocations.
type Noop struct{}

// Copy always reports the clipboard as unavailable.
func (Noop) Copy(string) error {
	return ErrUnavailable
}
