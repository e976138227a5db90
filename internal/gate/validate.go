package gate

import (
	"regexp"
	"strings"
)

const (
	maxAddressLen = 320
	maxLocalLen   = 64
	maxDomainLen  = 253
)

var (
	localPartRE = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+(\\.[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+)*$")
	labelRE     = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)
)

// ValidEmail reports whether s is a dot-atom address whose domain has at
// least two labels.
func ValidEmail(s string) bool {
	if s == "" || len(s) > maxAddressLen {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > maxLocalLen || !localPartRE.MatchString(local) {
		return false
	}
	return validDomain(domain)
}

func validDomain(domain string) bool {
	if len(domain) > maxDomainLen {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if !labelRE.MatchString(l) {
			return false
		}
	}
	return true
}
