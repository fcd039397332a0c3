package ldapcodec

import (
	"github.com/go-ldap/ldap/v3"
)

// Record is the friendly form of a directory entry: the entry DN under the
// key "dn" as a string, and every attribute under its own name as a
// []string of values. Attribute names keep the case the server delivered;
// value order is preserved and values are not deduplicated.
type Record map[string]any

// Marshal converts a wire-level search result entry into a Record.
//
// If the same attribute name appears twice in the wire entry (not expected
// under LDAP semantics) the later occurrence overwrites the earlier one;
// this is inherited map behavior, not a guarantee to rely on.
func Marshal(entry *ldap.Entry) Record {
	if entry == nil {
		return nil
	}

	record := make(Record, len(entry.Attributes)+1)
	record["dn"] = entry.DN

	for _, attr := range entry.Attributes {
		values := make([]string, len(attr.Values))
		copy(values, attr.Values)
		record[attr.Name] = values
	}

	return record
}

// MarshalAll converts entries element-wise, preserving order. No entries
// are filtered out.
func MarshalAll(entries []*ldap.Entry) []Record {
	records := make([]Record, len(entries))
	for i, entry := range entries {
		records[i] = Marshal(entry)
	}
	return records
}

// DN returns the entry DN, or "" when absent.
func (r Record) DN() string {
	dn, _ := r["dn"].(string)
	return dn
}

// Values returns the value list for an attribute, or nil when the
// attribute is absent.
func (r Record) Values(attr string) []string {
	values, _ := r[attr].([]string)
	return values
}

// Value returns the first value of an attribute, or "" when the attribute
// is absent or empty.
func (r Record) Value(attr string) string {
	if values := r.Values(attr); len(values) > 0 {
		return values[0]
	}
	return ""
}
