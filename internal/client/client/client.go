package client

import (
	"context"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// Client is the remote bowlers collection.
type Client interface {
	Close() error

	// Add stores a bowler and returns the ID the server assigned.
	Add(ctx context.Context, bowler models.Bowler) (string, error)
	Delete(ctx context.Context, id string) error
	// BatchDelete removes all ids atomically.
	BatchDelete(ctx context.Context, ids []string) error

	// Subscribe delivers every full snapshot to onNext, in arrival order, on
	// a single goroutine. A failure is reported once to onError and ends the
	// subscription. The returned func stops it; after it returns no further
	// callbacks run. It must not be called from inside a callback.
	Subscribe(ctx context.Context, onNext func([]models.Bowler), onError func(error)) (unsubscribe func())

	// Login exchanges the admin password for an access token, which is kept
	// for later admin calls and returned for persisting.
	Login(ctx context.Context, password []byte) (string, error)
	// SetAccessToken restores a previously issued token.
	SetAccessToken(token string)

	// Export returns a download link for a CSV of the current list.
	Export(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}
