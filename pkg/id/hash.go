package id

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashLength is the number of hex characters returned by Hash.
const HashLength = 12

// Hash returns the first 12 hex characters of the SHA-256 digest of content.
// It is a pure function of content.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:HashLength/2])
}

// Hash is the same as the package-level Hash.
func (g *Generator) Hash(content string) string {
	return Hash(content)
}
