package chain

import (
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const suffixLen = 4

var flagRE = regexp.MustCompile(`^flag\{(.+)\}`)

// HashHex is the chain link: hex SHA-512 of s.
func HashHex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Suffix returns the part of a chain hash appended to the next secret.
func Suffix(hash string) string {
	if len(hash) < suffixLen {
		return hash
	}
	return hash[len(hash)-suffixLen:]
}

// Transform derives the replacement for old. It returns the text to write in
// place of old and the plaintext that seeds the next link and, when a user is
// named, becomes their password.
func Transform(kind, old, suffix string) (replacement, plaintext string, err error) {
	switch kind {
	case KindPlain:
		replacement = old + suffix
		return replacement, replacement, nil
	case KindFlag:
		m := flagRE.FindStringSubmatch(old)
		if m == nil {
			return "", "", fmt.Errorf("invalid flag format for %s", old)
		}
		plaintext = m[1] + "_" + suffix
		return "flag{" + plaintext + "}", plaintext, nil
	case KindBase64:
		decoded, err := base64.StdEncoding.DecodeString(base64Alphabet(old))
		if err != nil || !utf8.Valid(decoded) {
			return "", "", fmt.Errorf("failed to decode base64 secret %s", old)
		}
		plaintext = string(decoded) + suffix
		return base64.StdEncoding.EncodeToString([]byte(plaintext)), plaintext, nil
	default:
		return "", "", fmt.Errorf("unknown secret type %q", kind)
	}
}

// base64Alphabet drops everything outside the standard alphabet so wrapped or
// spaced secrets still decode.
func base64Alphabet(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '+', r == '/', r == '=':
			return r
		}
		return -1
	}, s)
}
