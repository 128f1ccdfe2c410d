package model

import (
	"net/netip"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/idna"
)

const maxEmailLength = 320

var (
	dotAtomLocal = regexp.MustCompile("(?i)^[-!#$%&'*+/=?^_`{}|~0-9a-z]+(\\.[-!#$%&'*+/=?^_`{}|~0-9a-z]+)*$")
	quotedLocal  = regexp.MustCompile(`^"([\x01-\x08\x0b\x0c\x0e-\x1f!#-\[\]-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"$`)
	hostname     = regexp.MustCompile(`(?i)^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z0-9-]{2,63}$`)
	ipLiteral    = regexp.MustCompile(`(?i)^\[([a-f0-9:.]+)\]$`)

	emailDomainAllowlist = map[string]bool{"localhost": true}
)

// IsEmailAddress reports whether s is an acceptable supplier email address: a dot-atom or quoted
// local part, and a domain that is a hostname with a top-level label of two or more characters,
// an allowlisted name, or a bracketed IP literal. Internationalized domains are checked in their
// punycode form.
func IsEmailAddress(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]

	if !dotAtomLocal.MatchString(local) && !quotedLocal.MatchString(local) {
		return false
	}
	if emailDomainAllowlist[domain] || validEmailDomain(domain) {
		return true
	}

	ascii, err := idna.ToASCII(domain)
	if err != nil {
		return false
	}
	return validEmailDomain(ascii)
}

func validEmailDomain(domain string) bool {
	if hostname.MatchString(domain) && !strings.HasSuffix(domain, "-") {
		return true
	}
	m := ipLiteral.FindStringSubmatch(domain)
	if m == nil {
		return false
	}
	_, err := netip.ParseAddr(m[1])
	return err == nil
}

func validateEmailAddress(fl validator.FieldLevel) bool {
	return IsEmailAddress(fl.Field().String())
}
