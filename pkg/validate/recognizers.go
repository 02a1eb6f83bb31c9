// Package validate holds the named recognizers and converters for the
// path segments accepted by the timeline route grammar: fixed-length hex
// identifiers, base32-encoded addresses, non-negative integers, and the
// literal keyword sets (duration, sentinels, subfilters).
//
// Recognizers report a bool; parsers either yield the normalized value or
// return an invalid-argument error from pkg/queryerr.
package validate

import (
	"encoding/base32"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/chainscope/timeline/pkg/queryerr"
)

// Fixed byte widths for the hex-encoded identifier shapes.
const (
	ObjectIDBytes   = 12
	MosaicIDBytes   = 8
	NamespaceIDBytes = 8
	Hash256Bytes    = 32
	PublicKeyBytes  = 32
	AddressBytes    = 25
)

// IsHexOfLength reports whether s is a lowercase-or-uppercase hex string
// decoding to exactly n bytes.
func IsHexOfLength(s string, n int) bool {
	if len(s) != n*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func IsHexObjectID(s string) bool  { return IsHexOfLength(s, ObjectIDBytes) }
func IsHexMosaicID(s string) bool  { return IsHexOfLength(s, MosaicIDBytes) }
func IsHexNamespaceID(s string) bool { return IsHexOfLength(s, NamespaceIDBytes) }
func IsHexHash256(s string) bool   { return IsHexOfLength(s, Hash256Bytes) }
func IsHexPublicKey(s string) bool { return IsHexOfLength(s, PublicKeyBytes) }
func IsHexAddress(s string) bool   { return IsHexOfLength(s, AddressBytes) }

// base32Encoding is RFC4648 without padding, matching the 39-40 character
// unpadded encodings used by address strings.
var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsBase32Address reports whether s looks like a base32-encoded address:
// 39-40 characters, valid base32 alphabet.
func IsBase32Address(s string) bool {
	if len(s) < 39 || len(s) > 40 {
		return false
	}
	_, err := base32Encoding.DecodeString(strings.ToUpper(s))
	return err == nil
}

// IsNamespaceName reports whether s looks like a dotted namespace name: one
// to three lowercase alphanumeric segments (each starting with a letter,
// allowing '_'/'-'), joined by '.'. This is intentionally narrower than "any
// non-empty string" so a genuinely malformed anchor still falls through to
// invalid-argument instead of being swallowed as a name lookup.
func IsNamespaceName(s string) bool {
	segments := strings.Split(s, ".")
	if len(segments) == 0 || len(segments) > 3 {
		return false
	}
	for _, seg := range segments {
		if !isNamespaceSegment(seg) {
			return false
		}
	}
	return true
}

func isNamespaceSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for _, r := range seg {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// IsInteger reports whether s is a non-negative base-10 integer literal
// with no sign, leading "0x"/"0X" prefix, or other decoration.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseInteger converts a validated integer literal to uint64, returning an
// invalid-argument error on malformed input (e.g. "0X" hex-looking strings,
// scenario 3 in spec.md §8).
func ParseInteger(s string) (uint64, error) {
	if !IsInteger(s) {
		return 0, queryerr.InvalidArgument("malformed integer: " + s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, queryerr.InvalidArgument("malformed integer: " + s)
	}
	return n, nil
}
