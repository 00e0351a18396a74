package repomanager

import (
	"context"
	"database/sql"

	"github.com/mediavault/mediavault/internal/dbx"
	"github.com/mediavault/mediavault/internal/server/repositories/catalog"
	"github.com/mediavault/mediavault/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Catalog(db dbx.DBTX) catalog.Repository
}
