package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carswipe/internal/dbx"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/messages"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/threads"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so services can use
// the same repositories inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Threads(db dbx.DBTX) threads.Repository
	Messages(db dbx.DBTX) messages.Repository
}
