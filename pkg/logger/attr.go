package logger

import "log/slog"

// Error records err under the key "error". Nil errors produce an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CookieName records a cookie name. Never pass cookie values here.
func CookieName(name string) slog.Attr {
	return slog.String("cookie", name)
}

// KeyID records a key identifier. Only the identifier is ever logged.
func KeyID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("key_id", id)
}

// Reason records a short machine-readable failure class.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}
