package totp

import (
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Period is the RFC 6238 time step in seconds. Fixed: authenticator
// apps and the services issuing the secrets all assume 30.
const Period = 30

// Generate produces the 6-digit code for the given base32 secret at
// the given time. Same secret and same 30-second window always yield
// the same code.
func Generate(secret string, at time.Time) (string, error) {
	key, err := NormalizeSecret(secret)
	if err != nil {
		return "", err
	}

	code, err := totp.GenerateCodeCustom(key, at, totp.ValidateOpts{
		Period:    Period,
		Skew:      0,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("code generation failed: %w", err)
	}

	return code, nil
}

// NormalizeSecret cleans up a base32 secret the way issuers hand them
// out: mixed case, grouping spaces or hyphens, and usually without
// padding. Returns the canonical padded uppercase form, or an error if
// the result is not valid base32.
func NormalizeSecret(secret string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(secret))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimRight(s, "=")

	if s == "" {
		return "", fmt.Errorf("empty secret")
	}

	// Re-pad to a multiple of 8 for the standard decoder.
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}

	if _, err := base32.StdEncoding.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid base32 secret: %w", err)
	}

	return s, nil
}

// SecretFromInput reduces user input to a bare secret. Provisioning
// URIs (otpauth://...) are reduced to their secret query parameter:
// the text between "secret=" and the next "&" or end of string. All
// other issuer/account/algorithm fields are discarded. Non-URI input
// passes through unchanged.
func SecretFromInput(input string) (string, error) {
	if !strings.HasPrefix(input, "otpauth://") {
		return input, nil
	}

	_, rest, found := strings.Cut(input, "secret=")
	if !found {
		return "", fmt.Errorf("provisioning URI has no secret parameter")
	}

	secret, _, _ := strings.Cut(rest, "&")
	if secret == "" {
		return "", fmt.Errorf("provisioning URI has an empty secret parameter")
	}

	return secret, nil
}

// Remaining reports how long the code generated at the given time
// stays valid.
func Remaining(at time.Time) time.Duration {
	return time.Duration(Period-at.Unix()%Period) * time.Second
}
