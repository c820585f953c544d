// Package models defines the sign-up record shared by the client and the
// server.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Bowler is one contest sign-up entry.
type Bowler struct {
	// ID is assigned by the store on creation and never changes afterwards.
	ID string `json:"id"`

	Name string `json:"name"`

	// Email is compared case-insensitively and stored lowercase.
	Email string `json:"email"`

	// Phone is free text; only its digits identify the bowler.
	Phone string `json:"phone"`

	OptedIn bool `json:"optedIn"`

	// CreatedAt is stamped by the submitting client.
	CreatedAt time.Time `json:"createdAt"`
}

// Candidate is a sign-up that has not been written yet.
type Candidate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	OptedIn bool   `json:"optedIn"`
}

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// Validate checks the form fields. The returned error wraps
// common.ErrValidation.
func (c Candidate) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.Phone, validation.Required, validation.By(phoneDigits)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// Bowler turns the candidate into a record without an ID.
func (c Candidate) Bowler(createdAt time.Time) Bowler {
	return Bowler{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		OptedIn:   c.OptedIn,
		CreatedAt: createdAt,
	}
}

func phoneDigits(value any) error {
	s, _ := value.(string)
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	if n < minPhoneDigits || n > maxPhoneDigits {
		return fmt.Errorf("must contain %d to %d digits", minPhoneDigits, maxPhoneDigits)
	}
	return nil
}
