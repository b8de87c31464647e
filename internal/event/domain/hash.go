package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// UnknownAddress stands in when no caller address can be derived.
const UnknownAddress = "unknown"

// HashAddress returns the one-way digest under which a caller address is
// stored. The raw address never reaches the database.
func HashAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = UnknownAddress
	}
	sum := sha256.Sum256([]byte(addr))
	return hex.EncodeToString(sum[:])
}
