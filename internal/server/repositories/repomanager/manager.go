package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bowlsignup/internal/dbx"
	"github.com/dmitrijs2005/bowlsignup/internal/server/repositories/bowlers"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Bowlers(db dbx.DBTX) bowlers.Repository
}
