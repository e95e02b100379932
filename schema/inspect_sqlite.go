package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/syssam/strata/schema/sqltype"
)

// SQLiteInspector implements Inspector over the sqlite pragma interface.
// SQLite has no information_schema, so discovery goes through
// sqlite_master and the table_info/foreign_key_list pragmas.
type SQLiteInspector struct {
	db *sql.DB
}

// NewSQLiteInspector returns an inspector for a sqlite database.
func NewSQLiteInspector(db *sql.DB) *SQLiteInspector {
	return &SQLiteInspector{db: db}
}

// Tables lists the user tables of the database.
func (i *SQLiteInspector) Tables(ctx context.Context) ([]TableRef, error) {
	rows, err := i.db.QueryContext(ctx, `SELECT name FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var refs []TableRef
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		refs = append(refs, TableRef{Name: name})
	}
	return refs, rows.Err()
}

// Columns lists the columns of a table via PRAGMA table_info.
func (i *SQLiteInspector) Columns(ctx context.Context, table string) ([]Column, error) {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cols []Column
	for rows.Next() {
		var (
			cid      int
			col      Column
			notNull  int
			def      sql.NullString
			pk       int
			typeName string
		)
		if err := rows.Scan(&cid, &col.Name, &typeName, &notNull, &def, &pk); err != nil {
			return nil, err
		}
		col.TypeName = typeName
		col.Type = sqltype.Lookup(typeName)
		col.Nullable = notNull == 0 && pk == 0
		if def.Valid {
			v := def.String
			col.Default = &v
		}
		// INTEGER PRIMARY KEY is the sqlite rowid alias and
		// auto-increments.
		col.AutoIncrement = pk > 0 && strings.EqualFold(typeName, "INTEGER")
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// PrimaryKeys lists the primary-key column names via PRAGMA table_info.
func (i *SQLiteInspector) PrimaryKeys(ctx context.Context, table string) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	// pk reports the 1-based position inside the primary key.
	byPos := make(map[int]string)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typeName   string
			def              sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typeName, &notNull, &def, &pk); err != nil {
			return nil, err
		}
		if pk > 0 {
			byPos[pk] = name
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	pks := make([]string, 0, len(byPos))
	for pos := 1; ; pos++ {
		name, ok := byPos[pos]
		if !ok {
			break
		}
		pks = append(pks, name)
	}
	return pks, nil
}

// ForeignKeys lists the foreign keys via PRAGMA foreign_key_list.
func (i *SQLiteInspector) ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error) {
	rows, err := i.db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var fks []ForeignKey
	for rows.Next() {
		var (
			id, seq            int
			refTable, from     string
			to                 sql.NullString
			onUpdate, onDelete string
			match              string
		)
		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return nil, err
		}
		fk := ForeignKey{
			Column:   from,
			RefTable: refTable,
			OnUpdate: ParseRefAction(onUpdate),
			OnDelete: ParseRefAction(onDelete),
		}
		if to.Valid {
			fk.RefColumn = to.String
		} else {
			fk.RefColumn = "id"
		}
		fks = append(fks, fk)
	}
	return fks, rows.Err()
}
