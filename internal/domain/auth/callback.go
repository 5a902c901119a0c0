package auth

import "net/url"

// SanitizeCallback reduces a sign-in callback to a same-origin relative
// path. Absolute URLs lose their scheme and host, protocol-relative values
// ("//evil.com") and anything not starting with "/" collapse to "/". This
// keeps the sign-in flow from becoming an open redirect.
func SanitizeCallback(raw string) string {
	if raw == "" {
		return "/"
	}

	// "//host" and "/\host" are treated as protocol-relative by browsers;
	// url.Parse would hide the host in u.Host, so check the raw value.
	if len(raw) > 1 && raw[0] == '/' && (raw[1] == '/' || raw[1] == '\\') {
		return "/"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "/"
	}

	path := u.Path
	if path == "" || path[0] != '/' {
		return "/"
	}

	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}
	return path
}
