// Package objectid implements the 12-byte internal identifier used as the
// final tie-breaker across every family's sort key. Its layout mirrors the
// familiar 4-byte-timestamp/5-byte-machine/3-byte-counter object id shape:
// the leading bytes carry a coarse time prefix, which is why relying on the
// id alone for primary ordering is forbidden — the prefix wraps.
package objectid

import (
	"encoding/hex"
	"fmt"
)

const Size = 12

// ID is an opaque, comparable 12-byte identifier.
type ID [Size]byte

// Min is the all-zero sentinel, used as the low end of the composite
// sentinel tuple for "since min"/"from min" range predicates.
var Min = ID{}

// Max is the all-F sentinel, used as the high end of the composite
// sentinel tuple for "since max"/"from max" range predicates. It is an
// explicit constant, not derived from the type's zero/width, so the
// algebra in pkg/rangequery stays total per spec.md §9.
var Max = ID{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// String renders the id as lowercase hex, matching the identifier-anchor
// wire form accepted by pkg/validate.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Less reports whether id sorts strictly before other under the id's own
// byte ordering. Only used as a final tie-breaker, never as a primary key.
func (id ID) Less(other ID) bool {
	for i := range id {
		if id[i] != other[i] {
			return id[i] < other[i]
		}
	}
	return false
}

// Parse decodes a 24-character hex string into an ID.
func Parse(s string) (ID, error) {
	var id ID
	if len(s) != Size*2 {
		return id, fmt.Errorf("objectid: wrong length %d, want %d", len(s), Size*2)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("objectid: %w", err)
	}
	copy(id[:], b)
	return id, nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
