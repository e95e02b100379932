package migrate

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata/metadata"
)

func TestVersion(t *testing.T) {
	at := time.Date(2026, 8, 31, 14, 2, 5, 0, time.UTC)
	assert.Equal(t, "20260831140205", Version(at))

	// Tokens order lexically by instant.
	later := Version(at.Add(time.Second))
	assert.Greater(t, later, Version(at))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alter table posts", "alter_table_posts"},
		{"Add STATE column!", "add_state_column"},
		{"  spaced   out  ", "spaced_out"},
		{"v2-final", "v2_final"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestRenderUnsupportedDialect(t *testing.T) {
	_, err := Render(&Delta{Table: "posts"}, Dialect("yaml"), "20260831140205")
	require.Error(t, err)
	assert.True(t, IsUnsupportedDialectError(err))
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestRenderVersionedSQL(t *testing.T) {
	delta := &Delta{
		Table: "posts",
		Changes: []Change{
			DropColumn{Name: "status"},
			AddColumn{Name: "state", Type: "INT", Nullable: false},
		},
	}
	script, err := Render(delta, DialectVersionedSQL, "20260831140205")
	require.NoError(t, err)

	assert.Equal(t, DialectVersionedSQL, script.Dialect)
	assert.Equal(t, "db/migration", script.Dir)
	assert.Equal(t, "20260831140205__alter_table_posts.sql", script.FileName)
	assert.Equal(t, "db/migration/20260831140205__alter_table_posts.sql", script.Path())

	drop := strings.Index(script.Content, "ALTER TABLE posts DROP COLUMN status;")
	add := strings.Index(script.Content, "ALTER TABLE posts ADD COLUMN state INT NOT NULL;")
	require.GreaterOrEqual(t, drop, 0)
	require.GreaterOrEqual(t, add, 0)
	assert.Less(t, drop, add)
}

func TestRenderSQLStatements(t *testing.T) {
	dflt := "0"
	delta := &Delta{
		Table: "posts",
		Changes: []Change{
			DropForeignKey{Constraint: "fk_posts_author_id"},
			AddColumn{Name: "views", Type: "BIGINT", Nullable: true, Default: &dflt},
			AlterColumn{Name: "title", Type: "VARCHAR(255)", Nullable: false},
			AddForeignKey{Constraint: "fk_posts_owner_id", Column: "owner_id", RefTable: "accounts", RefColumn: "id"},
		},
	}
	script, err := Render(delta, DialectVersionedSQL, "20260831140205")
	require.NoError(t, err)

	assert.Contains(t, script.Content, "ALTER TABLE posts DROP CONSTRAINT fk_posts_author_id;")
	assert.Contains(t, script.Content, "ALTER TABLE posts ADD COLUMN views BIGINT DEFAULT 0;")
	assert.Contains(t, script.Content, "ALTER TABLE posts ALTER COLUMN title TYPE VARCHAR(255);")
	assert.Contains(t, script.Content, "ALTER TABLE posts ALTER COLUMN title SET NOT NULL;")
	assert.Contains(t, script.Content, "ALTER TABLE posts ADD CONSTRAINT fk_posts_owner_id FOREIGN KEY (owner_id) REFERENCES accounts (id);")
}

func TestRenderChangelog(t *testing.T) {
	delta := &Delta{
		Table: "posts",
		Changes: []Change{
			DropColumn{Name: "status"},
			AddColumn{Name: "state", Type: "INT", Nullable: false},
		},
	}
	script, err := Render(delta, DialectChangelog, "20260831140205")
	require.NoError(t, err)

	assert.Equal(t, "db/changelog", script.Dir)
	assert.Equal(t, "20260831140205_posts_migration.xml", script.FileName)

	var log changeLog
	require.NoError(t, xml.Unmarshal([]byte(script.Content), &log))
	require.Len(t, log.ChangeSets, 1)
	cs := log.ChangeSets[0]
	assert.Equal(t, "20260831140205", cs.ID)
	require.Len(t, cs.DropColumns, 1)
	assert.Equal(t, "status", cs.DropColumns[0].ColumnName)
	require.Len(t, cs.AddColumns, 1)
	require.Len(t, cs.AddColumns[0].Columns, 1)
	col := cs.AddColumns[0].Columns[0]
	assert.Equal(t, "state", col.Name)
	assert.Equal(t, "INT", col.Type)
	require.NotNil(t, col.Constraints)
	assert.False(t, col.Constraints.Nullable)
}

func TestRenderFlagsDestructive(t *testing.T) {
	destructive := &Delta{
		Table: "posts",
		Changes: []Change{
			DropColumn{Name: "status"},
			AddColumn{Name: "state", Type: "INT", Nullable: false},
		},
	}
	script, err := Render(destructive, DialectVersionedSQL, "20260831140205")
	require.NoError(t, err)
	warn := strings.Index(script.Content, "-- destructive:")
	drop := strings.Index(script.Content, "ALTER TABLE posts DROP COLUMN status;")
	require.GreaterOrEqual(t, warn, 0)
	require.GreaterOrEqual(t, drop, 0)
	assert.Less(t, warn, drop)

	script, err = Render(destructive, DialectChangelog, "20260831140205")
	require.NoError(t, err)
	var log changeLog
	require.NoError(t, xml.Unmarshal([]byte(script.Content), &log))
	require.Len(t, log.ChangeSets, 1)
	assert.Contains(t, log.ChangeSets[0].Comment, "destructive")

	additive := &Delta{
		Table:   "posts",
		Changes: []Change{AddColumn{Name: "views", Type: "BIGINT", Nullable: true}},
	}
	script, err = Render(additive, DialectVersionedSQL, "20260831140205")
	require.NoError(t, err)
	assert.NotContains(t, script.Content, "-- destructive:")

	script, err = Render(additive, DialectChangelog, "20260831140205")
	require.NoError(t, err)
	log = changeLog{}
	require.NoError(t, xml.Unmarshal([]byte(script.Content), &log))
	assert.Empty(t, log.ChangeSets[0].Comment)
}

func TestRenderEmptyDelta(t *testing.T) {
	script, err := Render(nil, DialectVersionedSQL, "20260831140205")
	require.NoError(t, err)
	assert.Empty(t, script.Content)

	script, err = Render(&Delta{Table: "posts"}, DialectChangelog, "20260831140205")
	require.NoError(t, err)
	assert.Contains(t, script.Content, "changeSet")
}

func TestRenderDeterministic(t *testing.T) {
	delta := &Delta{
		Table: "posts",
		Changes: []Change{
			DropColumn{Name: "status"},
			AddColumn{Name: "state", Type: "INT", Nullable: false},
		},
	}
	for _, dialect := range []Dialect{DialectVersionedSQL, DialectChangelog} {
		first, err := Render(delta, dialect, "20260831140205")
		require.NoError(t, err)
		second, err := Render(delta, dialect, "20260831140205")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

// Scenario: a field replaced by a differently named one diffs into a
// drop plus an add and renders both statements in that order.
func TestDiffRenderEndToEnd(t *testing.T) {
	old := snapshot(
		metadata.EntityField{Name: "id", Type: "Long", Column: "id"},
		metadata.EntityField{Name: "status", Type: "String", Column: "status", Nullable: true},
	)
	next := snapshot(
		metadata.EntityField{Name: "id", Type: "Long", Column: "id"},
		metadata.EntityField{Name: "state", Type: "Int", Column: "state"},
	)
	delta := Diff(old, next)
	require.NotNil(t, delta)

	script, err := Render(delta, DialectVersionedSQL, Version(time.Now()))
	require.NoError(t, err)
	drop := strings.Index(script.Content, "DROP COLUMN status")
	add := strings.Index(script.Content, "ADD COLUMN state INT NOT NULL")
	require.GreaterOrEqual(t, drop, 0)
	require.GreaterOrEqual(t, add, 0)
	assert.Less(t, drop, add)
}
