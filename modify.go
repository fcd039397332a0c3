package ldapcodec

import (
	"fmt"
	"reflect"

	"github.com/go-ldap/ldap/v3"
)

// Intent describes one friendly modification of a single attribute on an
// existing entry. It is a closed union: Add, Delete or Replace.
type Intent interface {
	modifyIntent()
}

// Add appends values to an attribute. Value may be a scalar or a list; it
// is normalized through Wrap.
type Add struct {
	Field string
	Value any
}

// Delete removes an attribute entirely.
type Delete struct {
	Field string
}

// Replace substitutes the values of an attribute. Value may be a scalar or
// a list; it is normalized through Wrap.
type Replace struct {
	Field string
	Value any
}

func (Add) modifyIntent()     {}
func (Delete) modifyIntent()  {}
func (Replace) modifyIntent() {}

// Wrap normalizes a scalar-or-list value into the list-of-text shape the
// wire protocol requires. A slice or array converts element-wise to text,
// preserving order; anything else converts to text and is wrapped in a
// one-element list. []byte counts as a single scalar value, not a list of
// bytes. A nil value yields an empty list.
func Wrap(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		values := make([]string, len(v))
		copy(values, v)
		return values
	case []byte:
		return []string{string(v)}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		values := make([]string, rv.Len())
		for i := range values {
			values[i] = stringify(rv.Index(i).Interface())
		}
		return values
	}

	return []string{stringify(value)}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Convert turns a modify intent into the wire-level change descriptor
// consumed by a go-ldap modify request:
//
//	Add{f, v}     → ldap.AddAttribute with Wrap(v)
//	Delete{f}     → ldap.DeleteAttribute with no values
//	Replace{f, v} → ldap.ReplaceAttribute with Wrap(v)
//
// A nil Intent is a programming error and panics; there is no silent
// default operation.
func Convert(intent Intent) ldap.Change {
	switch in := intent.(type) {
	case Add:
		return ldap.Change{
			Operation:    ldap.AddAttribute,
			Modification: ldap.PartialAttribute{Type: in.Field, Vals: Wrap(in.Value)},
		}
	case Delete:
		return ldap.Change{
			Operation:    ldap.DeleteAttribute,
			Modification: ldap.PartialAttribute{Type: in.Field, Vals: []string{}},
		}
	case Replace:
		return ldap.Change{
			Operation:    ldap.ReplaceAttribute,
			Modification: ldap.PartialAttribute{Type: in.Field, Vals: Wrap(in.Value)},
		}
	default:
		panic(fmt.Sprintf("ldapcodec: unsupported modify intent %T", intent))
	}
}

// BuildModifyRequest converts a batch of intents into a ready-to-send
// modify request for the given DN, preserving intent order.
func BuildModifyRequest(dn string, intents ...Intent) *ldap.ModifyRequest {
	request := ldap.NewModifyRequest(dn, nil)
	for _, intent := range intents {
		request.Changes = append(request.Changes, Convert(intent))
	}
	return request
}
