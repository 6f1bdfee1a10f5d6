// Package eth provides syntactic validation for Ethereum account addresses.
//
// Validation is purely syntactic (format and checksum), never an existence
// check: no network or registry lookup is performed.
package eth

import (
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/Bitcoinera/aragon/errors"
)

// AddressLength is the length of a hex-encoded address including the 0x prefix
const AddressLength = 42

// IsAddress reports whether s is a syntactically valid account address:
// a 0x prefix followed by exactly 40 hex digits. All-lowercase and
// all-uppercase hex are accepted as-is; mixed-case addresses must carry a
// valid EIP-55 checksum.
func IsAddress(s string) bool {
	if !isHexAddress(s) {
		return false
	}

	body := s[2:]
	hasUpper := strings.ContainsAny(body, "ABCDEF")
	hasLower := strings.ContainsAny(body, "abcdef")
	if !hasUpper || !hasLower {
		return true
	}

	checksummed, err := ChecksumAddress(s)
	if err != nil {
		return false
	}
	return checksummed == s
}

// ChecksumAddress returns the canonical EIP-55 mixed-case form of s.
// The input may be in any case as long as it is a 0x-prefixed 40-digit
// hex string; otherwise errors.ErrInvalidAddress is returned.
func ChecksumAddress(s string) (string, error) {
	if !isHexAddress(s) {
		return "", errors.Wrapf(errors.ErrInvalidAddress, "%q is not a 0x-prefixed 40-digit hex string", s)
	}

	lower := strings.ToLower(s[2:])

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(lower))
	hash := hasher.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		// Uppercase the hex digit when the corresponding hash nibble is >= 8
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}

	return "0x" + string(out), nil
}

// isHexAddress checks the raw shape: 0x prefix plus 40 hex digits
func isHexAddress(s string) bool {
	if len(s) != AddressLength || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
