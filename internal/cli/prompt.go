package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/posener/complete"
	"golang.org/x/term"

	"totp/internal/index"
)

// readSecret prompts on stderr and reads a line from stdin without
// echo when stdin is a terminal. Piped input falls back to a plain
// line read so the tool stays scriptable.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// maskSecret hides all but the last four characters for debug output.
func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}

// ServicePredictor completes -s values from the service index.
// Best effort: any load failure yields no completions.
func ServicePredictor() complete.Predictor {
	return complete.PredictFunc(func(complete.Args) []string {
		idx, err := index.Load(index.DefaultPath())
		if err != nil {
			return nil
		}
		return idx.List()
	})
}
