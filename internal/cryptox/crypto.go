// Package cryptox derives password verifiers with argon2id. The server keeps
// only the salt and verifier of the admin password, never the password itself.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 32

// DeriveKey stretches password with argon2id into a 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so it can be stored and compared.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// PasswordVerifier checks password candidates against a salted verifier.
type PasswordVerifier struct {
	salt     []byte
	verifier []byte
}

// NewPasswordVerifier salts and hashes password. The caller may wipe
// password afterwards.
func NewPasswordVerifier(password []byte) *PasswordVerifier {
	salt := common.GenerateRandByteArray(saltSize)
	return &PasswordVerifier{
		salt:     salt,
		verifier: MakeVerifier(DeriveKey(password, salt)),
	}
}

// Check reports whether candidate matches, in constant time.
func (v *PasswordVerifier) Check(candidate []byte) bool {
	if len(candidate) == 0 {
		return false
	}
	got := MakeVerifier(DeriveKey(candidate, v.salt))
	return subtle.ConstantTimeCompare(v.verifier, got) == 1
}
