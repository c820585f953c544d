package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/client/client"
	"github.com/dmitrijs2005/bowlsignup/internal/client/guard"
	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// RecordSource is the read side of the local mirror.
type RecordSource interface {
	Records() []models.Bowler
	IDs() []string
}

// SignupService turns a form submission into at most one remote Add.
type SignupService struct {
	client client.Client
	mirror RecordSource
	logger logging.Logger
	now    func() time.Time
}

func NewSignupService(c client.Client, mirror RecordSource, logger logging.Logger) *SignupService {
	return &SignupService{
		client: c,
		mirror: mirror,
		logger: logger.With("module", "signup"),
		now:    time.Now,
	}
}

// Submit rejects duplicates of what the mirror currently holds, validates
// the candidate, then writes it with a lowercase email and a creation
// time. It does not touch the mirror; the new record shows up with the
// next snapshot. Errors match common.ErrValidation,
// common.ErrDuplicateRejected or common.ErrRemoteWriteFailed. No retry.
func (s *SignupService) Submit(ctx context.Context, candidate models.Candidate) error {
	if guard.IsDuplicate(candidate.Email, candidate.Phone, s.mirror.Records()) {
		s.logger.Info(ctx, "duplicate sign-up rejected")
		return common.ErrDuplicateRejected
	}

	if err := candidate.Validate(); err != nil {
		return err
	}

	candidate.Email = strings.ToLower(candidate.Email)

	id, err := s.client.Add(ctx, candidate.Bowler(s.now()))
	if err != nil {
		s.logger.Error(ctx, "sign-up write failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrRemoteWriteFailed, err)
	}

	s.logger.Info(ctx, "sign-up stored", "id", id)
	return nil
}
