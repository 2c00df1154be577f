package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateEntry(t *testing.T) {
	dup := &mysql.MySQLError{Number: DuplicateEntry, Message: "Duplicate entry"}

	assert.True(t, IsDuplicateEntry(dup))
	assert.True(t, IsDuplicateEntry(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1146}))
	assert.False(t, IsDuplicateEntry(errors.New("boom")))
	assert.False(t, IsDuplicateEntry(nil))
}

func TestMigrate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS region")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), sqlx.NewDb(sqlDB, "sqlmock")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS region")).
		WillReturnError(errors.New("access denied"))

	err = Migrate(context.Background(), sqlx.NewDb(sqlDB, "sqlmock"))
	assert.ErrorContains(t, err, "create region table failed")
}
