// Package schema holds passive value objects describing a relational
// table as discovered by introspection: columns, primary keys and foreign
// keys. Objects are created fresh per introspection pass and discarded
// once entity metadata has been derived from them; none of the types are
// safe for concurrent mutation.
package schema

import (
	"github.com/syssam/strata/naming"
	"github.com/syssam/strata/schema/sqltype"
)

// Column describes a single table column. It is immutable once
// constructed.
type Column struct {
	// Name is the column name as reported by the database.
	Name string
	// Type is the SQL type code of the column.
	Type sqltype.Code
	// TypeName is the raw type name reported by the database
	// (e.g. "character varying").
	TypeName string
	// Size is the declared size or precision, when applicable.
	Size int
	// Digits is the declared decimal scale, when applicable.
	Digits int
	// Nullable reports whether the column accepts NULL.
	Nullable bool
	// Default holds the declared default expression, if any.
	Default *string
	// AutoIncrement reports identity/serial columns.
	AutoIncrement bool
	// Comment is the column comment, if the database exposes one.
	Comment string
}

// FieldName returns the camelCase field identifier for the column.
func (c Column) FieldName() string {
	return naming.Camel(c.Name)
}

// StructField returns the PascalCase accessor identifier for the column,
// used to derive getter/setter names.
func (c Column) StructField() string {
	return naming.Pascal(c.Name)
}

// LangType returns the mapped language type of the column.
func (c Column) LangType(lang sqltype.Lang) string {
	return sqltype.Map(c.Type, c.Size, c.Digits, lang)
}
