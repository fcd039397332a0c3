package ldapcodec

import (
	"fmt"
	"strings"
)

// Component is a single attribute=value pair of a distinguished name.
// Component lists are ordered most-specific-first: the leaf RDN comes first
// and the root suffix last, matching LDAP convention.
type Component struct {
	Type  string // attribute type, e.g. "uid"
	Value string // attribute value, unescaped
}

// String renders the component as "type=value" with the value escaped.
func (c Component) String() string {
	return c.Type + "=" + EscapeValue(c.Value)
}

// Spec selects the shape of input accepted by Build. It is a closed union:
// a nil Spec means "no new components", Raw is a pre-formatted DN fragment,
// and Components is an ordered list rendered with escaping.
type Spec interface {
	dnSpec()
}

// Raw is a DN fragment the caller has already escaped and formatted. Build
// passes it through verbatim; no escaping is applied.
type Raw string

func (Raw) dnSpec() {}

// Components is an ordered list of DN components, leaf RDN first.
type Components []Component

func (Components) dnSpec() {}

// String renders the components as a comma-separated DN with each value
// escaped. An empty list renders as the empty string.
func (cs Components) String() string {
	segments := make([]string, len(cs))
	for i, c := range cs {
		segments[i] = c.String()
	}
	return strings.Join(segments, ",")
}

// Build constructs a DN string from a Spec on top of an optional base DN.
//
//   - nil spec returns base unchanged.
//   - A Raw fragment is used verbatim (caller-escaped) and joined to a
//     non-empty base with a comma. An empty Raw behaves like nil.
//   - A Components list renders each component as type=escaped(value),
//     joins the segments with commas and prepends the result to base.
//
// Attribute types are passed through as supplied; Build performs no
// validation that they are legal attribute type names.
func Build(spec Spec, base string) string {
	switch s := spec.(type) {
	case nil:
		return base
	case Raw:
		return joinDN(string(s), base)
	case Components:
		return joinDN(s.String(), base)
	default:
		panic(fmt.Sprintf("ldapcodec: unsupported DN spec %T", spec))
	}
}

func joinDN(rdn, base string) string {
	if rdn == "" {
		return base
	}
	if base == "" {
		return rdn
	}
	return rdn + "," + base
}

// Parse decomposes a DN string into its ordered list of components.
//
// The scanner walks the input once, left to right. A backslash marks the
// next character as literal, so escaped commas and equals signs inside
// values do not delimit; only an unescaped comma separates segments and
// only the first unescaped equals sign in a segment separates the type
// from the value. Returned types and values are unescaped.
//
// Empty input yields a nil list. A segment without an unescaped equals
// sign (including an empty segment) aborts the entire parse with a
// *SyntaxError; no partial result is returned. Output order matches input
// order, most-specific-first.
func Parse(dn string) ([]Component, error) {
	if dn == "" {
		return nil, nil
	}

	var components []Component
	start := 0 // start of the current segment
	eq := -1   // offset of its first unescaped '='
	escaped := false

	for i := 0; i < len(dn); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch dn[i] {
		case '\\':
			escaped = true
		case '=':
			if eq < 0 {
				eq = i
			}
		case ',':
			c, err := cutSegment(dn, start, eq, i)
			if err != nil {
				return nil, err
			}
			components = append(components, c)
			start = i + 1
			eq = -1
		}
	}

	c, err := cutSegment(dn, start, eq, len(dn))
	if err != nil {
		return nil, err
	}
	return append(components, c), nil
}

func cutSegment(dn string, start, eq, end int) (Component, error) {
	if eq < 0 {
		return Component{}, &SyntaxError{DN: dn, Segment: dn[start:end]}
	}
	return Component{
		Type:  UnescapeValue(dn[start:eq]),
		Value: UnescapeValue(dn[eq+1 : end]),
	}, nil
}

// Parent returns the parent DN with the leaf RDN removed.
// "uid=jdoe,ou=People,dc=org" becomes "ou=People,dc=org".
func Parent(dn string) (string, error) {
	if dn == "" {
		return "", fmt.Errorf("DN cannot be empty")
	}

	components, err := Parse(dn)
	if err != nil {
		return "", err
	}
	if len(components) <= 1 {
		return "", fmt.Errorf("DN has no parent: %s", dn)
	}

	return Components(components[1:]).String(), nil
}

// ExtractValue returns the value of the first component whose attribute
// type matches attrType, compared case-insensitively. Extracting "uid"
// from "uid=jdoe,ou=People,dc=org" returns "jdoe".
func ExtractValue(dn, attrType string) (string, error) {
	if dn == "" {
		return "", fmt.Errorf("DN cannot be empty")
	}

	components, err := Parse(dn)
	if err != nil {
		return "", err
	}

	for _, c := range components {
		if strings.EqualFold(c.Type, attrType) {
			return c.Value, nil
		}
	}

	return "", fmt.Errorf("attribute type %q not found in DN %q", attrType, dn)
}

// IsChild reports whether childDN sits below parentDN in the tree, directly
// or indirectly. Components are compared case-insensitively on both type
// and value.
func IsChild(childDN, parentDN string) (bool, error) {
	if childDN == "" || parentDN == "" {
		return false, fmt.Errorf("DNs cannot be empty")
	}

	child, err := Parse(childDN)
	if err != nil {
		return false, fmt.Errorf("invalid child DN: %w", err)
	}
	parent, err := Parse(parentDN)
	if err != nil {
		return false, fmt.Errorf("invalid parent DN: %w", err)
	}

	if len(child) <= len(parent) {
		return false, nil
	}

	offset := len(child) - len(parent)
	for i, pc := range parent {
		cc := child[offset+i]
		if !strings.EqualFold(cc.Type, pc.Type) || !strings.EqualFold(cc.Value, pc.Value) {
			return false, nil
		}
	}

	return true, nil
}

// NormalizeCase uppercases the attribute type of every component, leaving
// values untouched: "cn=john,dc=example" becomes "CN=john,DC=example".
// Whitespace-only input normalizes to the empty string.
func NormalizeCase(dn string) (string, error) {
	dn = strings.TrimSpace(dn)
	if dn == "" {
		return "", nil
	}

	components, err := Parse(dn)
	if err != nil {
		return "", err
	}

	for i := range components {
		components[i].Type = strings.ToUpper(components[i].Type)
	}

	return Components(components).String(), nil
}
