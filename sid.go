package ldapcodec

import (
	"fmt"

	"github.com/bwmarrin/go-objectsid"
	"github.com/go-ldap/ldap/v3"
)

// sidHeaderLength covers revision, sub-authority count and the 48-bit
// identifier authority; each sub-authority adds four bytes.
const sidHeaderLength = 8

// SIDFromBytes converts binary objectSid data into the human-readable
// S-1-5-21-... form.
func SIDFromBytes(binarySID []byte) (string, error) {
	if len(binarySID) < sidHeaderLength {
		return "", fmt.Errorf("malformed binary SID: %d bytes", len(binarySID))
	}
	if want := sidHeaderLength + 4*int(binarySID[1]); len(binarySID) != want {
		return "", fmt.Errorf("malformed binary SID: expected %d bytes for %d sub-authorities, got %d",
			want, binarySID[1], len(binarySID))
	}

	sid := objectsid.Decode(binarySID)
	return sid.String(), nil
}

// ExtractSID reads the objectSid attribute of an entry and returns it as
// text.
func ExtractSID(entry *ldap.Entry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("entry cannot be nil")
	}

	sidBytes := entry.GetRawAttributeValue("objectSid")
	if len(sidBytes) == 0 {
		return "", fmt.Errorf("objectSid attribute not found in entry %s", entry.DN)
	}

	return SIDFromBytes(sidBytes)
}

// SIDFilter renders the search filter that looks an entry up by its
// objectSid. The server accepts the text form directly.
func SIDFilter(sidString string) (string, error) {
	if len(sidString) < 5 || sidString[:2] != "S-" {
		return "", fmt.Errorf("invalid SID format: %q must start with S-", sidString)
	}
	return fmt.Sprintf("(objectSid=%s)", ldap.EscapeFilter(sidString)), nil
}
