package utils

import (
	"crypto/sha256"
	"fmt"
)

// HashBytes returns the hex-encoded sha256 digest of b. Used to track unique
// serving responses without retaining the bodies themselves.
func HashBytes(b []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(b))
}
