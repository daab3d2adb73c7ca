package cookie

import "errors"

var (
	ErrCookieNotFound       = errors.New("cookie.not_found")
	ErrSameSiteNoneInsecure = errors.New("cookie.same_site_none_requires_secure")
)
