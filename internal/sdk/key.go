package sdk

import (
	"strings"

	"github.com/palmdev/palmdev-prep/internal/intern"
)

// CanonicalKey returns the SDK key for a directory name or a user-supplied
// SDK name. A leading "palmos" and then a leading "sdk-" are removed
// (ASCII case-insensitively), and a key whose only dot starts a trailing
// ".0" loses that suffix, so that "sdk-4.0" answers to -palmos4 while
// "sdk-4.0.0" and "sdk-3.5" are kept as they are.
func CanonicalKey(store *intern.Store, name string) string {
	name = trimPrefixFold(name, "palmos")
	name = trimPrefixFold(name, "sdk-")

	key := store.Intern(name)
	if dot := strings.IndexByte(key, '.'); dot >= 0 && key[dot:] == ".0" {
		key = key[:dot]
	}
	return key
}

// HasPrefixFold reports whether s starts with the lower-case ASCII prefix,
// folding only ASCII letters of s.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLower(s[i]) != prefix[i] {
			return false
		}
	}
	return true
}

func trimPrefixFold(s, prefix string) string {
	if HasPrefixFold(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsNumeric reports whether key is made of decimal digits only, in which
// case the compiler driver also accepts "<key>.0" for it. The empty key
// counts as numeric.
func IsNumeric(key string) bool {
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return false
		}
	}
	return true
}
