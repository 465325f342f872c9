// Package validation holds the input grammars for contact fields. The
// patterns are a fixed contract; changing them changes which requests
// the API accepts.
package validation

import "regexp"

var (
	// RFC-5322-lite: dot-separated atoms, then one or more DNS labels.
	emailRe = regexp.MustCompile(`(?i)^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)

	// International format: optional "+", no leading zero, 8-15 digits total.
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)
)

// EmailValid reports whether s is a well-formed email address.
func EmailValid(s string) bool {
	return emailRe.MatchString(s)
}

// PhoneValid reports whether s is a well-formed international mobile
// phone number.
func PhoneValid(s string) bool {
	return phoneRe.MatchString(s)
}
