package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateError(t *testing.T) {
	require.True(t, IsDuplicateError(gorm.ErrDuplicatedKey))
	require.True(t, IsDuplicateError(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	require.True(t, IsDuplicateError(&pgconn.PgError{Code: "23505"}))

	require.False(t, IsDuplicateError(nil))
	require.False(t, IsDuplicateError(&mysql.MySQLError{Number: 1452}))
	require.False(t, IsDuplicateError(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsDuplicateError(errors.New("boom")))
}
