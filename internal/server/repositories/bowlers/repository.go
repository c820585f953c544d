package bowlers

import (
	"context"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

type Repository interface {
	Create(ctx context.Context, bowler *models.Bowler) (*models.Bowler, error)
	List(ctx context.Context) ([]models.Bowler, error)
	Delete(ctx context.Context, id string) error
}
