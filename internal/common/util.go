package common

import "crypto/rand"

// GenerateRandByteArray returns size random bytes, or nil if the system
// random source fails.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil
	}
	return b
}

// WipeByteArray overwrites b with zeros. Used for passwords once they have
// been sent or hashed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
