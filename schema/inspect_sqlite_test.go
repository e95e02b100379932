package schema

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata/schema/sqltype"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// In-memory databases are per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteInspector(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	for _, stmt := range []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			bio TEXT
		)`,
		`CREATE TABLE posts (
			id INTEGER PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			author_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE
		)`,
	} {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	tables, err := Inspect(ctx, NewSQLiteInspector(db), nil)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	posts, users := tables[0], tables[1]
	require.Equal(t, "posts", posts.Name)
	require.Equal(t, "users", users.Name)

	assert.Equal(t, []string{"id"}, users.PrimaryKeys)
	require.Len(t, users.Columns, 3)
	assert.True(t, users.Columns[0].AutoIncrement)
	assert.Equal(t, sqltype.Varchar, users.Columns[1].Type)
	assert.False(t, users.Columns[1].Nullable)
	assert.True(t, users.Columns[2].Nullable)

	require.Len(t, posts.ForeignKeys, 1)
	fk := posts.ForeignKeys[0]
	assert.Equal(t, "author_id", fk.Column)
	assert.Equal(t, "users", fk.RefTable)
	assert.Equal(t, "id", fk.RefColumn)
	assert.Equal(t, Cascade, fk.OnDelete)
	assert.Equal(t, NoAction, fk.OnUpdate)
}

func TestSQLiteInspectorCompositeKey(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `CREATE TABLE order_items (
		order_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL,
		PRIMARY KEY (order_id, product_id)
	)`)
	require.NoError(t, err)

	insp := NewSQLiteInspector(db)
	pks, err := insp.PrimaryKeys(ctx, "order_items")
	require.NoError(t, err)
	assert.Equal(t, []string{"order_id", "product_id"}, pks)
}
