package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/dbx"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
	"github.com/dmitrijs2005/bowlsignup/internal/server/repositories/bowlers"
)

type fakeBowlersRepo struct {
	mu sync.Mutex

	rows []models.Bowler

	createErr error
	listErr   error
	deleteErr map[string]error

	deleted []string
}

func (f *fakeBowlersRepo) Create(ctx context.Context, b *models.Bowler) (*models.Bowler, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.rows = append(f.rows, *b)
	return b, nil
}

func (f *fakeBowlersRepo) List(ctx context.Context) ([]models.Bowler, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Bowler, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeBowlersRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deleteErr[id]; err != nil {
		return err
	}
	for i, b := range f.rows {
		if b.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeRepoManager struct {
	repo *fakeBowlersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Bowlers(db dbx.DBTX) bowlers.Repository { return m.repo }
