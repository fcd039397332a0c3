package ldapcodec

import (
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builtinAdministratorsSID is S-1-5-32-544 in binary form: revision 1, two
// sub-authorities, NT authority (5), then 32 and 544 little-endian.
var builtinAdministratorsSID = []byte{
	0x01, 0x02,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x05,
	0x20, 0x00, 0x00, 0x00,
	0x20, 0x02, 0x00, 0x00,
}

func TestSIDFromBytes(t *testing.T) {
	sid, err := SIDFromBytes(builtinAdministratorsSID)
	require.NoError(t, err)
	assert.Equal(t, "S-1-5-32-544", sid)
}

func TestSIDFromBytesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "too short", input: []byte{0x01, 0x02, 0x00}},
		{name: "truncated sub-authorities", input: builtinAdministratorsSID[:12]},
		{name: "trailing bytes", input: append(append([]byte{}, builtinAdministratorsSID...), 0x00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SIDFromBytes(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestExtractSID(t *testing.T) {
	entry := &ldap.Entry{
		DN: "cn=Administrators,cn=Builtin,dc=org",
		Attributes: []*ldap.EntryAttribute{
			{Name: "objectSid", ByteValues: [][]byte{builtinAdministratorsSID}},
		},
	}

	sid, err := ExtractSID(entry)
	require.NoError(t, err)
	assert.Equal(t, "S-1-5-32-544", sid)
}

func TestExtractSIDMissing(t *testing.T) {
	_, err := ExtractSID(&ldap.Entry{DN: "cn=x,dc=org"})
	assert.Error(t, err)

	_, err = ExtractSID(nil)
	assert.Error(t, err)
}

func TestSIDFilter(t *testing.T) {
	filter, err := SIDFilter("S-1-5-32-544")
	require.NoError(t, err)
	assert.Equal(t, "(objectSid=S-1-5-32-544)", filter)
}

func TestSIDFilterInvalid(t *testing.T) {
	_, err := SIDFilter("not-a-sid")
	assert.Error(t, err)
}
