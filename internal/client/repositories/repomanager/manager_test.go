package repomanager

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/users"
)

func TestSQLiteRepositoryManager_VendsSQLiteRepositories(t *testing.T) {
	m := NewSQLiteRepositoryManager()
	db := &sql.DB{}

	assert.IsType(t, &users.SQLiteRepository{}, m.Users(db))
	assert.IsType(t, &metadata.SQLiteRepository{}, m.Metadata(db))
}
