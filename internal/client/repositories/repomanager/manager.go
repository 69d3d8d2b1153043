// Package repomanager vends repository implementations bound to a DBTX, so
// services can use the same constructors for plain handles and transactions.
package repomanager

import (
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/users"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Metadata(db dbx.DBTX) metadata.Repository
}

// SQLiteRepositoryManager returns the SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Metadata(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

var _ RepositoryManager = (*SQLiteRepositoryManager)(nil)
