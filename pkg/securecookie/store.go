package securecookie

import (
	"log/slog"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
	"github.com/dmitrymomot/cookiekit/pkg/secrets"
)

// Store maps cookie name/value/max-age triples onto encrypted cookies.
// It holds no per-request state; the request is passed in as a jar on every
// call. A Store is safe for concurrent use when its KeyProvider is.
type Store struct {
	provider secrets.KeyProvider
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report rejected cookies at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store. A nil provider means a fresh secrets.RandomProvider:
// zero configuration, with cookies readable only by this Store's key.
func New(provider secrets.KeyProvider, opts ...Option) *Store {
	if provider == nil {
		provider = secrets.NewRandomProvider()
	}

	s := &Store{
		provider: provider,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("securecookie"))

	return s
}

// Add encrypts value and writes it as cookie name with the given max-age.
// maxAge is passed through to the jar unchanged. An error means no cookie
// was written.
func (s *Store) Add(jar CookieWriter, name, value string, maxAge int) error {
	key, err := s.provider.Key()
	if err != nil {
		return err
	}

	encoded, err := Encode(key, name, value)
	if err != nil {
		return err
	}

	jar.WriteCookie(name, encoded, maxAge)
	return nil
}

// Value reads and decrypts cookie name. It reports false when the cookie is
// missing, malformed, tampered with or sealed under an unknown key; those
// cases are indistinguishable to the caller.
func (s *Store) Value(jar CookieReader, name string) (string, bool) {
	raw, ok := jar.ReadCookie(name)
	if !ok {
		return "", false
	}

	keys, err := s.keys()
	if err != nil {
		s.reject(name, "", err)
		return "", false
	}

	var lastErr error
	var lastKey string
	for _, key := range keys {
		value, err := Decode(key, name, raw)
		if err == nil {
			return value, true
		}
		lastErr, lastKey = err, key.ID()
	}

	s.reject(name, lastKey, lastErr)
	return "", false
}

// ValueOr is Value with a fallback for the absent case.
func (s *Store) ValueOr(jar CookieReader, name, defaultValue string) string {
	if v, ok := s.Value(jar, name); ok {
		return v
	}
	return defaultValue
}

// Delete expires cookie name.
func (s *Store) Delete(jar CookieWriter, name string) {
	jar.WriteCookie(name, "", -1)
}

func (s *Store) keys() ([]secrets.KeyMaterial, error) {
	if ring, ok := s.provider.(secrets.KeyRing); ok {
		return ring.Keys()
	}
	key, err := s.provider.Key()
	if err != nil {
		return nil, err
	}
	return []secrets.KeyMaterial{key}, nil
}

// reject logs a dropped cookie. Only the name, the key identifier and the
// failure class are recorded.
func (s *Store) reject(name, keyID string, err error) {
	s.log.Debug("secure cookie rejected",
		logger.CookieName(name),
		logger.KeyID(keyID),
		logger.Reason(reason(err)),
	)
}
