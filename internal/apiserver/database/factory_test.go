package database

import (
	"testing"

	"github.com/gestiparc/gestiparc/internal/common/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDatabase_SQLite(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	assert.NoError(t, err)
	assert.NotNil(t, db)
	assert.NoError(t, db.Close())
}

func TestNewDatabase_Unsupported(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Type: "mongodb"})
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "unsupported database type")
}
