package bowlers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/dbx"
	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the bowler as given; the ID must already be set.
func (r *PostgresRepository) Create(ctx context.Context, bowler *models.Bowler) (*models.Bowler, error) {

	query :=
		`INSERT INTO bowlers (id, name, email, phone, opted_in, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		bowler.ID, bowler.Name, bowler.Email, bowler.Phone, bowler.OptedIn, bowler.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bowler, nil
}

// List returns every bowler in sign-up order.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Bowler, error) {
	query :=
		`SELECT id, name, email, phone, opted_in, created_at FROM bowlers
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Bowler{}
	for rows.Next() {
		var b models.Bowler
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.OptedIn, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Delete removes one bowler. A missing row yields common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM bowlers
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
