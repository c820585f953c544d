package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

type fakeClient struct {
	mu sync.Mutex

	added      []models.Bowler
	deleted    []string
	batches    [][]string
	logins     int
	token      string
	exportLink string

	addErr    error
	deleteErr error
	batchErr  error
	loginErr  error
	exportErr error
	pingErr   error
	closed    bool
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeClient) Add(ctx context.Context, b models.Bowler) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return "", f.addErr
	}
	f.added = append(f.added, b)
	return "new-id", nil
}

func (f *fakeClient) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) BatchDelete(ctx context.Context, ids []string) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batches = append(f.batches, append([]string(nil), ids...))
	return nil
}

func (f *fakeClient) Subscribe(ctx context.Context, onNext func([]models.Bowler), onError func(error)) func() {
	return func() {}
}

func (f *fakeClient) Login(ctx context.Context, password []byte) (string, error) {
	f.logins++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = "jwt-token"
	return f.token, nil
}

func (f *fakeClient) SetAccessToken(token string) { f.token = token }

func (f *fakeClient) Export(ctx context.Context) (string, error) {
	if f.exportErr != nil {
		return "", f.exportErr
	}
	return f.exportLink, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

type fakeMirror struct {
	records []models.Bowler
}

func (m *fakeMirror) Records() []models.Bowler { return m.records }

func (m *fakeMirror) IDs() []string {
	ids := make([]string, 0, len(m.records))
	for _, r := range m.records {
		ids = append(ids, r.ID)
	}
	return ids
}
