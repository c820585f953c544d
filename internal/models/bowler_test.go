package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/stretchr/testify/require"
)

func TestCandidate_Validate_OK(t *testing.T) {
	c := Candidate{Name: "Jane Doe", Email: "JANE@X.COM", Phone: "(555) 123-4567", OptedIn: true}
	require.NoError(t, c.Validate())
}

func TestCandidate_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want string
	}{
		{"missing name", Candidate{Email: "a@b.co", Phone: "5551234567"}, "name"},
		{"missing email", Candidate{Name: "A", Phone: "5551234567"}, "email"},
		{"bad email", Candidate{Name: "A", Email: "not-an-email", Phone: "5551234567"}, "email"},
		{"missing phone", Candidate{Name: "A", Email: "a@b.co"}, "phone"},
		{"too few digits", Candidate{Name: "A", Email: "a@b.co", Phone: "12-34"}, "phone"},
		{"too many digits", Candidate{Name: "A", Email: "a@b.co", Phone: "1234567890123456"}, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			require.ErrorIs(t, err, common.ErrValidation)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCandidate_Bowler(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	b := Candidate{Name: "A", Email: "a@b.co", Phone: "555", OptedIn: true}.Bowler(now)

	require.Empty(t, b.ID)
	require.Equal(t, "A", b.Name)
	require.Equal(t, "a@b.co", b.Email)
	require.Equal(t, "555", b.Phone)
	require.True(t, b.OptedIn)
	require.Equal(t, now, b.CreatedAt)
}
