package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

// sha256HexPattern matches a hex encoded SHA-256 digest.
var sha256HexPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// SHA256Hex computes the SHA-256 digest of data and returns it as a
// lowercase hex string.
//
// Example usage:
//
//	digest := utils.SHA256Hex([]byte("some data"))
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// IsSHA256Hex reports whether s has the shape of a hex encoded SHA-256
// digest: exactly 64 hexadecimal characters.
func IsSHA256Hex(s string) bool {
	return sha256HexPattern.MatchString(s)
}
