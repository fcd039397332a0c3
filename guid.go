package ldapcodec

import (
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

// GUIDBytesLength is the size of a binary objectGUID value.
const GUIDBytesLength = 16

// Active Directory stores objectGUID in mixed-endian order: the first
// three groups are little-endian, the final eight bytes big-endian. The
// swap is its own inverse, so the same transform works in both directions.
func swapGUIDEndianness(in []byte) []byte {
	out := make([]byte, GUIDBytesLength)
	out[0], out[1], out[2], out[3] = in[3], in[2], in[1], in[0]
	out[4], out[5] = in[5], in[4]
	out[6], out[7] = in[7], in[6]
	copy(out[8:], in[8:])
	return out
}

// GUIDFromBytes converts binary objectGUID data into the standard
// hyphenated lowercase text form.
func GUIDFromBytes(guidBytes []byte) (string, error) {
	if len(guidBytes) != GUIDBytesLength {
		return "", fmt.Errorf("invalid GUID byte length: expected %d, got %d", GUIDBytesLength, len(guidBytes))
	}

	id, err := uuid.FromBytes(swapGUIDEndianness(guidBytes))
	if err != nil {
		return "", fmt.Errorf("failed to decode GUID: %w", err)
	}

	return id.String(), nil
}

// GUIDToBytes converts GUID text (hyphenated or compact hex) into the
// binary form Active Directory stores and matches against.
func GUIDToBytes(guidString string) ([]byte, error) {
	id, err := uuid.Parse(strings.TrimSpace(guidString))
	if err != nil {
		return nil, fmt.Errorf("invalid GUID %q: %w", guidString, err)
	}

	return swapGUIDEndianness(id[:]), nil
}

// NormalizeGUID converts GUID text to the canonical hyphenated lowercase
// form.
func NormalizeGUID(guidString string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(guidString))
	if err != nil {
		return "", fmt.Errorf("invalid GUID %q: %w", guidString, err)
	}
	return id.String(), nil
}

// ExtractGUID reads the objectGUID attribute of an entry and returns it as
// text.
func ExtractGUID(entry *ldap.Entry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("entry cannot be nil")
	}

	guidBytes := entry.GetRawAttributeValue("objectGUID")
	if len(guidBytes) == 0 {
		return "", fmt.Errorf("objectGUID attribute not found in entry %s", entry.DN)
	}

	return GUIDFromBytes(guidBytes)
}

// GUIDFilter renders the search filter that looks an entry up by its
// objectGUID, using the binary form the server indexes.
func GUIDFilter(guidString string) (string, error) {
	guidBytes, err := GUIDToBytes(guidString)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("(objectGUID=%s)", ldap.EscapeFilter(string(guidBytes))), nil
}
