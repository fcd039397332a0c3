package ldapcodec

import (
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// ErrDNSyntax is the sentinel matched by errors.Is for any malformed DN
// reported by Parse.
var ErrDNSyntax = errors.New("invalid DN syntax")

// SyntaxError reports a malformed distinguished name. It is returned by
// Parse when a segment contains no unescaped attribute separator; the whole
// parse aborts and no partial component list is produced.
type SyntaxError struct {
	DN      string // the full input being parsed
	Segment string // the offending segment
}

func (e *SyntaxError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("invalid DN syntax in %q: empty segment", e.DN)
	}
	return fmt.Sprintf("invalid DN syntax in %q: segment %q has no attribute separator", e.DN, e.Segment)
}

func (e *SyntaxError) Unwrap() error {
	return ErrDNSyntax
}

// ResultCode returns the LDAP result code a directory server would answer
// with for the same input, for callers that surface protocol-level codes.
func (e *SyntaxError) ResultCode() uint16 {
	return ldap.LDAPResultInvalidDNSyntax
}
