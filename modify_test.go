package ldapcodec

import (
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{
			name:     "string list passes through",
			input:    []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "scalar string wraps",
			input:    "a",
			expected: []string{"a"},
		},
		{
			name:     "scalar int converts to text",
			input:    42,
			expected: []string{"42"},
		},
		{
			name:     "int list converts element-wise",
			input:    []int{1, 2, 3},
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "mixed list converts element-wise",
			input:    []any{"a", 1, true},
			expected: []string{"a", "1", "true"},
		},
		{
			name:     "byte slice is a single value",
			input:    []byte("raw"),
			expected: []string{"raw"},
		},
		{
			name:     "nil yields empty list",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "empty list stays empty",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Wrap(tt.input))
		})
	}
}

func TestWrapCopiesInput(t *testing.T) {
	original := []string{"a", "b"}
	wrapped := Wrap(original)
	wrapped[0] = "mutated"
	assert.Equal(t, "a", original[0])
}

func TestConvertAdd(t *testing.T) {
	change := Convert(Add{Field: "mail", Value: "jdoe@example.com"})

	assert.Equal(t, uint(ldap.AddAttribute), change.Operation)
	assert.Equal(t, "mail", change.Modification.Type)
	assert.Equal(t, []string{"jdoe@example.com"}, change.Modification.Vals)
}

func TestConvertAddList(t *testing.T) {
	change := Convert(Add{Field: "memberUid", Value: []string{"a", "b"}})

	assert.Equal(t, uint(ldap.AddAttribute), change.Operation)
	assert.Equal(t, []string{"a", "b"}, change.Modification.Vals)
}

func TestConvertDelete(t *testing.T) {
	change := Convert(Delete{Field: "description"})

	assert.Equal(t, uint(ldap.DeleteAttribute), change.Operation)
	assert.Equal(t, "description", change.Modification.Type)
	assert.Equal(t, []string{}, change.Modification.Vals)
}

func TestConvertReplace(t *testing.T) {
	change := Convert(Replace{Field: "telephoneNumber", Value: []string{"123", "456"}})

	assert.Equal(t, uint(ldap.ReplaceAttribute), change.Operation)
	assert.Equal(t, "telephoneNumber", change.Modification.Type)
	assert.Equal(t, []string{"123", "456"}, change.Modification.Vals)
}

func TestConvertPanicsOnNilIntent(t *testing.T) {
	assert.Panics(t, func() {
		Convert(nil)
	})
}

func TestBuildModifyRequest(t *testing.T) {
	request := BuildModifyRequest("uid=jdoe,ou=People,dc=org",
		Replace{Field: "mail", Value: "jdoe@example.com"},
		Delete{Field: "description"},
		Add{Field: "memberUid", Value: []string{"a", "b"}},
	)

	assert.Equal(t, "uid=jdoe,ou=People,dc=org", request.DN)
	require.Len(t, request.Changes, 3)

	assert.Equal(t, uint(ldap.ReplaceAttribute), request.Changes[0].Operation)
	assert.Equal(t, "mail", request.Changes[0].Modification.Type)

	assert.Equal(t, uint(ldap.DeleteAttribute), request.Changes[1].Operation)
	assert.Empty(t, request.Changes[1].Modification.Vals)

	assert.Equal(t, uint(ldap.AddAttribute), request.Changes[2].Operation)
	assert.Equal(t, []string{"a", "b"}, request.Changes[2].Modification.Vals)
}

func TestBuildModifyRequestNoIntents(t *testing.T) {
	request := BuildModifyRequest("uid=jdoe,dc=org")

	assert.Equal(t, "uid=jdoe,dc=org", request.DN)
	assert.Empty(t, request.Changes)
}
