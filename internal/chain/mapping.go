package chain

import (
	"strings"
)

// Secret kinds a mapping line may name.
const (
	KindPlain  = "plain text"
	KindFlag   = "flag"
	KindBase64 = "base64"
)

// Step is one mapping line: the secret in Path to rewrite, how it is encoded,
// and optionally the account whose password follows it.
type Step struct {
	Path   string
	Secret string
	Kind   string
	User   string
}

// ParseMapping splits the decrypted mapping into steps. Lines with fewer than
// three fields are ignored.
func ParseMapping(text string) []Step {
	var steps []Step
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		s := Step{Path: parts[0], Secret: parts[1], Kind: parts[2]}
		if len(parts) > 3 {
			s.User = parts[3]
		}
		steps = append(steps, s)
	}
	return steps
}
