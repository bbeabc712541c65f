package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA-256 of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ShortETag returns a quoted strong ETag built from the first 16 hex chars of the content hash.
func ShortETag(data []byte) string {
	return `"` + SHA256Hex(data)[:16] + `"`
}
