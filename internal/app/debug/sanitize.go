package debug

import "strings"

// sensitiveKeySubstrings is the fixed set of substrings that mark a map key
// as secret-bearing. Matching is on the lowercase key name only, never on
// value content. The longer entries are subsumed by "token" but kept so the
// set reads as the full contract.
var sensitiveKeySubstrings = []string{
	"token",
	"password",
	"secret",
	"key",
	"authorization",
	"auth",
	"credential",
	"access_token",
	"refresh_token",
}

// redactedMarker replaces values that are too short to partially reveal.
const redactedMarker = "***REDACTED***"

// minPartialRevealLen is the minimum string length at which redaction keeps
// the first and last four characters visible.
const minPartialRevealLen = 13

// Sanitize recursively walks a JSON-like tree (scalars, lists, string-keyed
// maps) and redacts every value stored under a sensitive-looking key. The
// input is never mutated; maps and lists are copied. Cycles are not
// supported: this is intended for tree-shaped argument and response data.
func Sanitize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if isSensitiveKey(k) {
				out[k] = redact(val)
			} else {
				out[k] = Sanitize(val)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Sanitize(e)
		}
		return out
	default:
		return v
	}
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveKeySubstrings {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}

// redact replaces a sensitive value. Strings long enough to stay
// unguessable keep their first and last four characters so a caller can
// still recognize which credential was sent; everything else collapses to
// the fixed marker.
func redact(v any) any {
	if s, ok := v.(string); ok && len(s) >= minPartialRevealLen {
		return s[:4] + "..." + s[len(s)-4:]
	}
	return redactedMarker
}
