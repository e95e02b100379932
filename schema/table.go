package schema

import (
	"fmt"

	"github.com/syssam/strata/naming"
)

// TableRef identifies a table during discovery, before its columns have
// been enumerated.
type TableRef struct {
	Name    string
	Comment string
}

// RawTable is the first-stage discovery artifact: a table with its
// columns and primary keys but no resolved foreign keys. Foreign-key
// discovery may lag table discovery, so resolution is a separate,
// explicit step (see ResolveForeignKeys).
type RawTable struct {
	// Name is the table name.
	Name string
	// Comment is the table comment, if any.
	Comment string
	// Columns holds the table columns in ordinal order.
	Columns []Column
	// PrimaryKeys holds the primary-key column names in key order.
	PrimaryKeys []string
}

// Table is a fully resolved table: columns, primary keys and foreign
// keys. Tables are built only through ResolveForeignKeys and are not
// mutated afterwards.
type Table struct {
	RawTable
	// ForeignKeys holds the resolved foreign keys of the table.
	ForeignKeys []ForeignKey
}

// ResolveForeignKeys combines first-pass tables with the foreign keys
// discovered for them, keyed by table name. It validates that every
// primary-key name resolves to a column of its table.
func ResolveForeignKeys(raws []RawTable, fks map[string][]ForeignKey) ([]*Table, error) {
	tables := make([]*Table, 0, len(raws))
	for _, raw := range raws {
		for _, pk := range raw.PrimaryKeys {
			if _, ok := raw.column(pk); !ok {
				return nil, NewIntrospectionError(raw.Name, fmt.Sprintf("primary key %q does not match any column", pk), nil)
			}
		}
		tables = append(tables, &Table{
			RawTable:    raw,
			ForeignKeys: fks[raw.Name],
		})
	}
	return tables, nil
}

func (t RawTable) column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	return t.column(name)
}

// ClassName derives the entity class name of the table: the naive
// singular of the table name, Pascal-cased ("users" -> "User").
func (t *Table) ClassName() string {
	return naming.Pascal(naming.Singularize(t.Name))
}

// PrimaryKeyColumns returns the primary-key columns in key order.
func (t *Table) PrimaryKeyColumns() []Column {
	cols := make([]Column, 0, len(t.PrimaryKeys))
	for _, pk := range t.PrimaryKeys {
		if c, ok := t.column(pk); ok {
			cols = append(cols, c)
		}
	}
	return cols
}

// DataColumns returns the columns that are not part of the primary key.
func (t *Table) DataColumns() []Column {
	keys := make(map[string]struct{}, len(t.PrimaryKeys))
	for _, pk := range t.PrimaryKeys {
		keys[pk] = struct{}{}
	}
	var cols []Column
	for _, c := range t.Columns {
		if _, ok := keys[c.Name]; !ok {
			cols = append(cols, c)
		}
	}
	return cols
}

// ForeignKeyColumns returns the columns constrained by a foreign key,
// in column order.
func (t *Table) ForeignKeyColumns() []Column {
	constrained := make(map[string]struct{}, len(t.ForeignKeys))
	for _, fk := range t.ForeignKeys {
		constrained[fk.Column] = struct{}{}
	}
	var cols []Column
	for _, c := range t.Columns {
		if _, ok := constrained[c.Name]; ok {
			cols = append(cols, c)
		}
	}
	return cols
}

// ForeignKey returns the first foreign key constraining the given
// column. Duplicate constraints on one column are a data-quality defect;
// the first one discovered wins.
func (t *Table) ForeignKey(column string) (ForeignKey, bool) {
	for _, fk := range t.ForeignKeys {
		if fk.Column == column {
			return fk, true
		}
	}
	return ForeignKey{}, false
}
