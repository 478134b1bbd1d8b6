// Package dbtest opens throwaway sqlite databases for package tests.
package dbtest

import (
	"ets-backend/db"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// New returns a migrated in-memory database private to the test.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	tx, err := db.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name), false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrateDB(tx))
	t.Cleanup(func() {
		if sqlDB, err := tx.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return tx
}

// NewSeeded returns a database filled with the demo company.
func NewSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	tx := New(t)
	require.NoError(t, db.Seed(tx, bcrypt.MinCost))
	return tx
}
