// Package guard detects sign-ups that collide with an existing record.
//
// Identity is the lowercase email or the digits of the phone number. The
// check runs against whatever snapshot the caller passes, so two clients
// racing on stale snapshots can both pass it.
package guard

import (
	"strings"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// NormalizeEmail lowercases email. Whitespace is kept as is.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizePhone keeps only the ASCII digits 0-9.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for i := 0; i < len(phone); i++ {
		if c := phone[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsDuplicate reports whether any record shares the normalized email or the
// normalized phone with the candidate.
func IsDuplicate(email, phone string, records []models.Bowler) bool {
	e := NormalizeEmail(email)
	p := NormalizePhone(phone)

	for _, r := range records {
		if NormalizeEmail(r.Email) == e {
			return true
		}
		if NormalizePhone(r.Phone) == p {
			return true
		}
	}
	return false
}
