/*
Package ldapcodec implements the textual codec layer that sits between
application code and a go-ldap directory connection.

The package covers four concerns:

  - Value escaping: EscapeValue and UnescapeValue handle the reserved
    characters that may not appear bare inside a DN attribute value.
  - DN construction and parsing: Build renders a distinguished name from a
    Spec (a raw pre-escaped fragment or an ordered Components list) on top
    of an optional base DN; Parse decomposes DN text back into ordered
    Component pairs with an escape-aware scanner.
  - Entry marshalling: Marshal converts a *ldap.Entry search result into a
    friendly Record keyed by attribute name, with the entry DN under "dn".
  - Modify conversion: Convert turns an Add, Delete or Replace Intent into
    the ldap.Change descriptor consumed by a modify request, normalizing
    scalar and list values through Wrap.

Supporting helpers decode the Active Directory binary identifier attributes
(objectGUID, objectSid) into their text forms and render the search filters
used to look entries up by those identifiers.

Everything in this package is pure: no connections, no configuration, no
shared state. Transport, bind and search belong to go-ldap; schema
validation and filter grammar belong to the caller. All functions are safe
for concurrent use.

# DN handling

Components are ordered most-specific-first, matching LDAP convention:

	dn := ldapcodec.Build(ldapcodec.Components{
		{Type: "uid", Value: "jdoe"},
		{Type: "ou", Value: "People"},
	}, "dc=example,dc=com")
	// "uid=jdoe,ou=People,dc=example,dc=com"

	parsed, err := ldapcodec.Parse(dn)
	// [{uid jdoe} {ou People} {dc example} {dc com}]

Values passed through Components are escaped automatically; a Raw spec is
passed through verbatim and the caller is responsible for its escaping.

# Modify conversion

	req := ldapcodec.BuildModifyRequest("uid=jdoe,ou=People,dc=example,dc=com",
		ldapcodec.Replace{Field: "mail", Value: "jdoe@example.com"},
		ldapcodec.Delete{Field: "description"},
	)
	err := conn.Modify(req)

# Error handling

Parse is the only fallible codec operation: a segment without an attribute
separator aborts the whole parse with a *SyntaxError, which reports
ldap.LDAPResultInvalidDNSyntax and matches the ErrDNSyntax sentinel under
errors.Is. Convert panics on an impossible Intent value rather than guessing
at a default operation.
*/
package ldapcodec
