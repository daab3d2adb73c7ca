package securecookie

import (
	"strings"

	"github.com/dmitrymomot/cookiekit/pkg/secrets"
)

// Config selects the key source for a Store.
type Config struct {
	// Comma-separated secrets, newest first. Empty means a random
	// in-memory key that does not survive a restart.
	Secrets string `env:"COOKIE_SECRETS" envDefault:""`
	// HKDF info string used when deriving keys from Secrets.
	KeyInfo string `env:"COOKIE_KEY_INFO" envDefault:""`
}

func (c Config) parseSecrets() [][]byte {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	out := make([][]byte, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, []byte(s))
		}
	}
	return out
}

// NewFromConfig builds a Store whose keys are derived from cfg.Secrets, or a
// zero-config Store when no secrets are set.
func NewFromConfig(cfg Config, opts ...Option) (*Store, error) {
	list := cfg.parseSecrets()
	if len(list) == 0 {
		return New(secrets.NewRandomProvider(), opts...), nil
	}

	provider, err := secrets.NewSecretProvider(cfg.KeyInfo, list...)
	if err != nil {
		return nil, err
	}
	return New(provider, opts...), nil
}
