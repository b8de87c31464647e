// Package qr normalizes destination URLs and renders QR codes.
package qr

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// NormalizeURL canonicalizes free-text input into an absolute HTTP(S) URL.
// Input without a scheme gets https:// prepended. Anything that is empty,
// unparseable, or carries a non-HTTP(S) scheme is rejected.
func NormalizeURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	if !schemePattern.MatchString(trimmed) {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return "", false
	}
	if parsed.Host == "" {
		return "", false
	}

	if parsed.Path == "" {
		parsed.Path = "/"
	}
	return parsed.String(), true
}
