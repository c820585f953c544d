package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

func newSignup(c *fakeClient, records ...models.Bowler) *SignupService {
	s := NewSignupService(c, &fakeMirror{records: records}, logging.Nop())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestSubmit_NewCandidate_OneAddWithLowercaseEmail(t *testing.T) {
	c := &fakeClient{}
	s := newSignup(c, models.Bowler{ID: "r1", Email: "bob@x.com", Phone: "5550000000"})

	err := s.Submit(context.Background(), models.Candidate{
		Name: "Ann", Email: "Ann@X.com", Phone: "(555) 111-2222", OptedIn: true,
	})
	require.NoError(t, err)

	require.Len(t, c.added, 1)
	got := c.added[0]
	assert.Equal(t, "ann@x.com", got.Email)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "(555) 111-2222", got.Phone)
	assert.True(t, got.OptedIn)
	assert.Empty(t, got.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestSubmit_CaseInsensitiveEmailDuplicate_Rejected(t *testing.T) {
	c := &fakeClient{}
	s := newSignup(c, models.Bowler{ID: "r1", Email: "ann@x.com", Phone: "5550000000"})

	err := s.Submit(context.Background(), models.Candidate{
		Name: "Ann", Email: "ANN@x.com", Phone: "5551112222",
	})
	require.ErrorIs(t, err, common.ErrDuplicateRejected)
	assert.Empty(t, c.added)
}

func TestSubmit_JaneDoePhoneDuplicate_Rejected(t *testing.T) {
	c := &fakeClient{}
	s := newSignup(c, models.Bowler{ID: "r1", Name: "Jane Doe", Email: "jane@x.com", Phone: "555-123-4567"})

	err := s.Submit(context.Background(), models.Candidate{
		Name: "J. Doe", Email: "other@x.com", Phone: "(555) 123 4567",
	})
	require.ErrorIs(t, err, common.ErrDuplicateRejected)
	assert.Empty(t, c.added)
}

func TestSubmit_DuplicateCheckedBeforeValidation(t *testing.T) {
	c := &fakeClient{}
	s := newSignup(c, models.Bowler{ID: "r1", Name: "Jane Doe", Email: "jane@x.com", Phone: "555-123-4567"})

	err := s.Submit(context.Background(), models.Candidate{Name: "", Email: "JANE@x.com", Phone: ""})
	require.ErrorIs(t, err, common.ErrDuplicateRejected)
	assert.Empty(t, c.added)
}

func TestSubmit_InvalidCandidate_NoRemoteCall(t *testing.T) {
	c := &fakeClient{}
	s := newSignup(c)

	err := s.Submit(context.Background(), models.Candidate{Name: "", Email: "nope", Phone: "12"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, c.added)
}

func TestSubmit_RemoteError_WrapsRemoteWriteFailed(t *testing.T) {
	cause := errors.New("unavailable")
	c := &fakeClient{addErr: cause}
	s := newSignup(c)

	err := s.Submit(context.Background(), models.Candidate{
		Name: "Ann", Email: "ann@x.com", Phone: "5551112222",
	})
	require.ErrorIs(t, err, common.ErrRemoteWriteFailed)
	require.ErrorIs(t, err, cause)
}
