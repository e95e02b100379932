package schema

import (
	"context"
	"database/sql"
	"strings"

	"github.com/syssam/strata/schema/sqltype"
)

// Flavor selects the information_schema dialect of an SQLInspector.
type Flavor string

const (
	Postgres Flavor = "postgres"
	MySQL    Flavor = "mysql"
)

// placeholders rewrites $N markers to the flavor's placeholder style.
func (f Flavor) placeholders(q string) string {
	if f != MySQL {
		return q
	}
	q = strings.ReplaceAll(q, "$1", "?")
	return strings.ReplaceAll(q, "$2", "?")
}

// SQLInspector implements Inspector over database/sql and the standard
// information_schema views. The connection is owned by the caller; the
// inspector only queries it for the duration of each call.
type SQLInspector struct {
	db     *sql.DB
	schema string
	flavor Flavor
}

// NewSQLInspector returns an inspector for the given schema. The default
// flavor is Postgres; use WithFlavor for MySQL.
func NewSQLInspector(db *sql.DB, schema string) *SQLInspector {
	return &SQLInspector{db: db, schema: schema, flavor: Postgres}
}

// WithFlavor sets the information_schema flavor.
func (i *SQLInspector) WithFlavor(f Flavor) *SQLInspector {
	i.flavor = f
	return i
}

const listTablesQuery = `SELECT table_name
FROM information_schema.tables
WHERE table_schema = $1 AND table_type = 'BASE TABLE'
ORDER BY table_name`

// Tables lists the base tables of the schema.
func (i *SQLInspector) Tables(ctx context.Context) ([]TableRef, error) {
	rows, err := i.db.QueryContext(ctx, i.flavor.placeholders(listTablesQuery), i.schema)
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

const listColumnsQuery = `SELECT column_name, data_type,
	COALESCE(character_maximum_length, numeric_precision, 0),
	COALESCE(numeric_scale, 0),
	is_nullable, column_default
FROM information_schema.columns
WHERE table_schema = $1 AND table_name = $2
ORDER BY ordinal_position`

// Columns lists the columns of a table in ordinal order.
func (i *SQLInspector) Columns(ctx context.Context, table string) ([]Column, error) {
	rows, err := i.db.QueryContext(ctx, i.flavor.placeholders(listColumnsQuery), i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cols []Column
	for rows.Next() {
		var (
			col      Column
			size     int
			digits   int
			nullable string
			def      sql.NullString
		)
		if err := rows.Scan(&col.Name, &col.TypeName, &size, &digits, &nullable, &def); err != nil {
			return nil, err
		}
		col.Type = sqltype.Lookup(col.TypeName)
		col.Size = size
		col.Digits = digits
		col.Nullable = nullable == "YES"
		if def.Valid {
			v := def.String
			col.Default = &v
			// Serial columns report a nextval default rather than an
			// identity flag.
			col.AutoIncrement = strings.HasPrefix(v, "nextval(")
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

const listPrimaryKeysQuery = `SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
	ON tc.constraint_name = kcu.constraint_name
	AND tc.table_schema = kcu.table_schema
WHERE tc.constraint_type = 'PRIMARY KEY'
	AND tc.table_schema = $1
	AND tc.table_name = $2
ORDER BY kcu.ordinal_position`

// PrimaryKeys lists the primary-key column names of a table.
func (i *SQLInspector) PrimaryKeys(ctx context.Context, table string) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, i.flavor.placeholders(listPrimaryKeysQuery), i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var pks []string
	for rows.Next() {
		var pk string
		if err := rows.Scan(&pk); err != nil {
			return nil, err
		}
		pks = append(pks, pk)
	}
	return pks, rows.Err()
}

const listForeignKeysQuery = `SELECT
	tc.constraint_name,
	kcu.column_name,
	ccu.table_name,
	ccu.column_name,
	rc.update_rule,
	rc.delete_rule
FROM information_schema.table_constraints AS tc
JOIN information_schema.key_column_usage AS kcu
	ON tc.constraint_name = kcu.constraint_name
	AND tc.table_schema = kcu.table_schema
JOIN information_schema.constraint_column_usage AS ccu
	ON ccu.constraint_name = tc.constraint_name
	AND ccu.table_schema = tc.table_schema
JOIN information_schema.referential_constraints AS rc
	ON rc.constraint_name = tc.constraint_name
	AND rc.constraint_schema = tc.table_schema
WHERE tc.constraint_type = 'FOREIGN KEY'
	AND tc.table_schema = $1
	AND tc.table_name = $2`

const listForeignKeysQueryMySQL = `SELECT
	kcu.constraint_name,
	kcu.column_name,
	kcu.referenced_table_name,
	kcu.referenced_column_name,
	rc.update_rule,
	rc.delete_rule
FROM information_schema.key_column_usage kcu
JOIN information_schema.referential_constraints rc
	ON rc.constraint_name = kcu.constraint_name
	AND rc.constraint_schema = kcu.table_schema
WHERE kcu.table_schema = $1
	AND kcu.table_name = $2
	AND kcu.referenced_table_name IS NOT NULL`

// ForeignKeys lists the foreign keys constraining a table.
func (i *SQLInspector) ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error) {
	query := listForeignKeysQuery
	if i.flavor == MySQL {
		query = listForeignKeysQueryMySQL
	}
	rows, err := i.db.QueryContext(ctx, i.flavor.placeholders(query), i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var fks []ForeignKey
	for rows.Next() {
		var (
			fk       ForeignKey
			onUpdate string
			onDelete string
		)
		if err := rows.Scan(&fk.ConstraintName, &fk.Column, &fk.RefTable, &fk.RefColumn, &onUpdate, &onDelete); err != nil {
			return nil, err
		}
		fk.OnUpdate = ParseRefAction(onUpdate)
		fk.OnDelete = ParseRefAction(onDelete)
		fks = append(fks, fk)
	}
	return fks, rows.Err()
}
