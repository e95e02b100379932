package schema

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata/schema/sqltype"
)

func newMockInspector(t *testing.T) (*SQLInspector, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLInspector(db, "public"), mock
}

func TestSQLInspectorTables(t *testing.T) {
	insp, mock := newMockInspector(t)
	mock.ExpectQuery(listTablesQuery).
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("posts").
			AddRow("users"))

	refs, err := insp.Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TableRef{{Name: "posts"}, {Name: "users"}}, refs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLInspectorColumns(t *testing.T) {
	insp, mock := newMockInspector(t)
	cols := []string{"column_name", "data_type", "size", "digits", "is_nullable", "column_default"}
	mock.ExpectQuery(listColumnsQuery).
		WithArgs("public", "users").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("id", "bigint", 64, 0, "NO", "nextval('users_id_seq'::regclass)").
			AddRow("email", "character varying", 255, 0, "NO", nil).
			AddRow("balance", "numeric", 10, 2, "YES", nil))

	got, err := insp.Columns(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, sqltype.BigInt, got[0].Type)
	assert.True(t, got[0].AutoIncrement)
	assert.False(t, got[0].Nullable)

	assert.Equal(t, sqltype.Varchar, got[1].Type)
	assert.Equal(t, 255, got[1].Size)
	assert.Nil(t, got[1].Default)

	assert.Equal(t, sqltype.Numeric, got[2].Type)
	assert.Equal(t, 2, got[2].Digits)
	assert.True(t, got[2].Nullable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLInspectorPrimaryKeys(t *testing.T) {
	insp, mock := newMockInspector(t)
	mock.ExpectQuery(listPrimaryKeysQuery).
		WithArgs("public", "order_items").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
			AddRow("order_id").
			AddRow("product_id"))

	pks, err := insp.PrimaryKeys(context.Background(), "order_items")
	require.NoError(t, err)
	assert.Equal(t, []string{"order_id", "product_id"}, pks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLInspectorForeignKeys(t *testing.T) {
	insp, mock := newMockInspector(t)
	cols := []string{"constraint_name", "column_name", "table_name", "column_name", "update_rule", "delete_rule"}
	mock.ExpectQuery(listForeignKeysQuery).
		WithArgs("public", "posts").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("posts_author_id_fkey", "author_id", "users", "id", "NO ACTION", "CASCADE"))

	fks, err := insp.ForeignKeys(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, fks, 1)
	assert.Equal(t, ForeignKey{
		ConstraintName: "posts_author_id_fkey",
		Column:         "author_id",
		RefTable:       "users",
		RefColumn:      "id",
		OnUpdate:       NoAction,
		OnDelete:       Cascade,
	}, fks[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLInspectorMySQLFlavor(t *testing.T) {
	insp, mock := newMockInspector(t)
	insp.WithFlavor(MySQL)

	mock.ExpectQuery(MySQL.placeholders(listTablesQuery)).
		WithArgs("app").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("users"))
	insp.schema = "app"
	refs, err := insp.Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TableRef{{Name: "users"}}, refs)

	mock.ExpectQuery(MySQL.placeholders(listForeignKeysQueryMySQL)).
		WithArgs("app", "posts").
		WillReturnRows(sqlmock.NewRows([]string{"constraint_name", "column_name", "referenced_table_name", "referenced_column_name", "update_rule", "delete_rule"}).
			AddRow("fk_posts_users", "author_id", "users", "id", "RESTRICT", "SET NULL"))
	fks, err := insp.ForeignKeys(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, fks, 1)
	assert.Equal(t, Restrict, fks[0].OnUpdate)
	assert.Equal(t, SetNull, fks[0].OnDelete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlavorPlaceholders(t *testing.T) {
	assert.Equal(t, "a = ? AND b = ?", MySQL.placeholders("a = $1 AND b = $2"))
	assert.Equal(t, "a = $1", Postgres.placeholders("a = $1"))
}
