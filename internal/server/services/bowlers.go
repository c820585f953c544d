// Package services contains server-side business logic. BowlerService owns
// the bowlers collection: writes go to PostgreSQL and every successful
// write republishes the full list to the snapshot feed.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/dbx"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
	"github.com/dmitrijs2005/bowlsignup/internal/server/feed"
	"github.com/dmitrijs2005/bowlsignup/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type BowlerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hub         *feed.Hub
	logger      logging.Logger
	newID       func() string

	// publishMu serializes list+publish so snapshots reach the hub in
	// commit order.
	publishMu sync.Mutex
}

func NewBowlerService(db *sql.DB, m repomanager.RepositoryManager, hub *feed.Hub, logger logging.Logger) *BowlerService {
	return &BowlerService{
		db:          db,
		repomanager: m,
		hub:         hub,
		logger:      logger.With("module", "bowlers"),
		newID:       uuid.NewString,
	}
}

// Add stores bowler under a fresh ID and returns that ID. Any ID sent by
// the caller is ignored.
func (s *BowlerService) Add(ctx context.Context, bowler models.Bowler) (string, error) {
	bowler.ID = s.newID()

	repo := s.repomanager.Bowlers(s.db)
	if _, err := repo.Create(ctx, &bowler); err != nil {
		return "", fmt.Errorf("error creating bowler: %w", err)
	}

	s.logger.Info(ctx, "bowler added", "id", bowler.ID)
	s.publish(ctx)
	return bowler.ID, nil
}

// Delete removes one bowler; common.ErrorNotFound if it does not exist.
func (s *BowlerService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Bowlers(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting bowler: %w", err)
	}

	s.logger.Info(ctx, "bowler deleted", "id", id)
	s.publish(ctx)
	return nil
}

// BatchDelete removes all ids in one transaction. IDs that are already gone
// are skipped; any other failure rolls the whole batch back.
func (s *BowlerService) BatchDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	deleted := 0
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Bowlers(tx)
		for _, id := range ids {
			err := repo.Delete(ctx, id)
			if errors.Is(err, common.ErrorNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error deleting bowlers: %w", err)
	}

	s.logger.Info(ctx, "bowlers batch deleted", "requested", len(ids), "deleted", deleted)
	s.publish(ctx)
	return nil
}

// List returns the current collection in sign-up order.
func (s *BowlerService) List(ctx context.Context) ([]models.Bowler, error) {
	repo := s.repomanager.Bowlers(s.db)
	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bowlers: %w", err)
	}
	return list, nil
}

// Subscribe opens a snapshot subscription. The first snapshot is available
// on the channel right away. The hub is primed from the database on first
// use, and an error there fails the subscription.
func (s *BowlerService) Subscribe(ctx context.Context) (<-chan feed.Snapshot, func(), error) {
	if !s.hub.Primed() {
		if err := s.refresh(ctx); err != nil {
			return nil, nil, err
		}
	}
	ch, cancel := s.hub.Subscribe()
	return ch, cancel, nil
}

// publish republishes after a committed write. A failure is logged only;
// the write itself already succeeded.
func (s *BowlerService) publish(ctx context.Context) {
	if err := s.refresh(ctx); err != nil {
		s.logger.Error(ctx, "snapshot publish failed", "error", err)
	}
}

func (s *BowlerService) refresh(ctx context.Context) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	s.hub.Publish(list)
	return nil
}
