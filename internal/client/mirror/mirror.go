// Package mirror keeps the client's local copy of the bowlers collection.
//
// The mirror is a replace reducer over the subscription stream: each
// snapshot supersedes the previous one wholesale, nothing is merged. It is
// only as fresh as the last push.
package mirror

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// Source is anything that can push snapshots, typically client.Client.
type Source interface {
	Subscribe(ctx context.Context, onNext func([]models.Bowler), onError func(error)) (unsubscribe func())
}

type Mirror struct {
	mu      sync.RWMutex
	records []models.Bowler
	loading bool
	err     error

	// ready is closed on the first snapshot or failure.
	ready     chan struct{}
	readyOnce sync.Once

	// onFailure, if set, is called once with the terminal error.
	onFailure func(error)

	logger logging.Logger
}

func New(logger logging.Logger) *Mirror {
	return &Mirror{
		loading: true,
		ready:   make(chan struct{}),
		logger:  logger.With("module", "mirror"),
	}
}

// OnFailure registers fn to be told about a subscription failure. It must be
// set before Attach.
func (m *Mirror) OnFailure(fn func(error)) {
	m.onFailure = fn
}

// Attach subscribes the mirror to source and returns the unsubscribe func.
func (m *Mirror) Attach(ctx context.Context, source Source) func() {
	return source.Subscribe(ctx, m.Replace, m.Fail)
}

// Replace installs snapshot as the whole contents and clears loading.
// A mirror that already failed ignores further snapshots.
func (m *Mirror) Replace(snapshot []models.Bowler) {
	records := make([]models.Bowler, len(snapshot))
	copy(records, snapshot)

	m.mu.Lock()
	if m.err != nil {
		m.mu.Unlock()
		return
	}
	m.records = records
	m.loading = false
	m.mu.Unlock()

	m.markReady()
	m.logger.Debug(context.Background(), "snapshot applied", "count", len(records))
}

// Fail records a terminal subscription error. The last records are kept
// and no further snapshots are applied. Only the first error counts.
func (m *Mirror) Fail(err error) {
	m.mu.Lock()
	if m.err != nil {
		m.mu.Unlock()
		return
	}
	m.err = err
	m.loading = false
	m.mu.Unlock()

	m.markReady()
	m.logger.Error(context.Background(), "subscription failed", "error", err)
	if m.onFailure != nil {
		m.onFailure(err)
	}
}

// Records returns a copy of the current records.
func (m *Mirror) Records() []models.Bowler {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Bowler, len(m.records))
	copy(out, m.records)
	return out
}

// IDs returns the IDs of the current records, in order.
func (m *Mirror) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.records))
	for _, r := range m.records {
		ids = append(ids, r.ID)
	}
	return ids
}

func (m *Mirror) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Err returns the terminal subscription error, if any.
func (m *Mirror) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// WaitReady blocks until the first snapshot or failure arrives, or ctx ends.
func (m *Mirror) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mirror) markReady() {
	m.readyOnce.Do(func() { close(m.ready) })
}
