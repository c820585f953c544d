package cryptox

import (
	"bytes"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("strike")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Fatalf("expected same key for same inputs")
	}
	if len(key1) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(key1))
	}
}

func TestDeriveKey_SaltMatters(t *testing.T) {
	password := []byte("strike")
	if bytes.Equal(DeriveKey(password, []byte("a")), DeriveKey(password, []byte("b"))) {
		t.Fatalf("different salts must give different keys")
	}
}

func TestMakeVerifier_Length(t *testing.T) {
	if got := len(MakeVerifier([]byte("k"))); got != 32 {
		t.Fatalf("expected sha256 length 32, got %d", got)
	}
}

func TestPasswordVerifier_Check(t *testing.T) {
	v := NewPasswordVerifier([]byte("spare"))

	if !v.Check([]byte("spare")) {
		t.Fatalf("correct password rejected")
	}
	if v.Check([]byte("gutter")) {
		t.Fatalf("wrong password accepted")
	}
	if v.Check(nil) {
		t.Fatalf("empty password accepted")
	}
}

func TestPasswordVerifier_SaltIsRandom(t *testing.T) {
	a := NewPasswordVerifier([]byte("spare"))
	b := NewPasswordVerifier([]byte("spare"))
	if bytes.Equal(a.salt, b.salt) {
		t.Logf("warning: two verifiers share a salt; extremely unlikely")
	}
}
