// Package migrate computes the schema delta between two entity metadata
// snapshots and renders it as a migration script in one of the supported
// dialects. Diffing is keyed on column name and does not attempt rename
// detection: a replaced column is modeled as drop plus add.
package migrate

import (
	"github.com/syssam/strata/metadata"
	"github.com/syssam/strata/naming"
)

// Change is a single schema operation of a delta. The set of
// implementations is closed.
type Change interface {
	change()
	// Destructive reports whether applying the change discards data.
	// The engine only emits scripts; flagging destructive operations
	// leaves the decision to run them with the operator.
	Destructive() bool
}

// AddColumn adds a column to the table.
type AddColumn struct {
	Name     string
	Type     string
	Nullable bool
	Default  *string
}

// DropColumn removes a column from the table.
type DropColumn struct {
	Name string
}

// AlterColumn changes the type or nullability of a column.
type AlterColumn struct {
	Name     string
	Type     string
	Nullable bool
}

// AddForeignKey adds a foreign-key constraint on a column.
type AddForeignKey struct {
	Constraint string
	Column     string
	RefTable   string
	RefColumn  string
}

// DropForeignKey removes a foreign-key constraint.
type DropForeignKey struct {
	Constraint string
	Column     string
}

func (AddColumn) change()      {}
func (DropColumn) change()     {}
func (AlterColumn) change()    {}
func (AddForeignKey) change()  {}
func (DropForeignKey) change() {}

// Destructive only for DropColumn: dropping a column discards its data.
// Constraint drops and type alterations leave the rows in place.
func (AddColumn) Destructive() bool      { return false }
func (DropColumn) Destructive() bool     { return true }
func (AlterColumn) Destructive() bool    { return false }
func (AddForeignKey) Destructive() bool  { return false }
func (DropForeignKey) Destructive() bool { return false }

// Delta is the ordered set of schema operations migrating a table from
// one snapshot to the next. Constraint drops come first and constraint
// adds last so that no operation references a column or constraint that
// a later operation removes.
type Delta struct {
	Table   string
	Changes []Change
}

// Destructive reports whether any change of the delta discards data.
func (d *Delta) Destructive() bool {
	for _, c := range d.Changes {
		if c.Destructive() {
			return true
		}
	}
	return false
}

// columnDef is the diffable projection of one entity field.
type columnDef struct {
	name     string
	ddlType  string
	nullable bool
	dflt     *string
	fk       *fkDef
}

type fkDef struct {
	constraint string
	refTable   string
	refColumn  string
}

// Diff computes the delta between two snapshots of the same entity.
// It returns nil when the snapshots are structurally equal, so that
// diffing identical metadata never produces a migration.
func Diff(from, to *metadata.EntityMetadata) *Delta {
	table := to.TableName
	if table == "" {
		table = from.TableName
	}
	oldCols := columnDefs(from)
	newCols := columnDefs(to)
	oldByName := byName(oldCols)
	newByName := byName(newCols)

	var (
		dropFKs  []Change
		dropCols []Change
		addCols  []Change
		alters   []Change
		addFKs   []Change
	)
	for _, c := range oldCols {
		n, kept := newByName[c.name]
		if kept && sameFK(c.fk, n.fk) {
			continue
		}
		if c.fk != nil {
			dropFKs = append(dropFKs, DropForeignKey{Constraint: c.fk.constraint, Column: c.name})
		}
	}
	for _, c := range oldCols {
		if _, kept := newByName[c.name]; !kept {
			dropCols = append(dropCols, DropColumn{Name: c.name})
		}
	}
	for _, c := range newCols {
		o, existed := oldByName[c.name]
		if !existed {
			addCols = append(addCols, AddColumn{Name: c.name, Type: c.ddlType, Nullable: c.nullable, Default: c.dflt})
			continue
		}
		if o.ddlType != c.ddlType || o.nullable != c.nullable {
			alters = append(alters, AlterColumn{Name: c.name, Type: c.ddlType, Nullable: c.nullable})
		}
	}
	for _, c := range newCols {
		if c.fk == nil {
			continue
		}
		if o, existed := oldByName[c.name]; existed && sameFK(o.fk, c.fk) {
			continue
		}
		addFKs = append(addFKs, AddForeignKey{
			Constraint: c.fk.constraint,
			Column:     c.name,
			RefTable:   c.fk.refTable,
			RefColumn:  c.fk.refColumn,
		})
	}

	changes := make([]Change, 0, len(dropFKs)+len(dropCols)+len(addCols)+len(alters)+len(addFKs))
	changes = append(changes, dropFKs...)
	changes = append(changes, dropCols...)
	changes = append(changes, addCols...)
	changes = append(changes, alters...)
	changes = append(changes, addFKs...)
	if len(changes) == 0 {
		return nil
	}
	return &Delta{Table: table, Changes: changes}
}

func columnDefs(md *metadata.EntityMetadata) []columnDef {
	defs := make([]columnDef, 0, len(md.Fields))
	for _, f := range md.Fields {
		if f.Column == "" {
			continue
		}
		def := columnDef{name: f.Column, nullable: f.Nullable}
		if f.Relationship() {
			// The constrained column carries the referenced identifier
			// type.
			def.ddlType = ddlType(md.IDType)
			def.fk = &fkDef{
				constraint: "fk_" + md.TableName + "_" + f.Column,
				refTable:   naming.Pluralize(naming.Snake(f.RelatedEntity)),
				refColumn:  "id",
			}
		} else {
			def.ddlType = ddlType(f.Type)
		}
		defs = append(defs, def)
	}
	return defs
}

func byName(defs []columnDef) map[string]columnDef {
	m := make(map[string]columnDef, len(defs))
	for _, d := range defs {
		m[d.name] = d
	}
	return m
}

func sameFK(a, b *fkDef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ddlType maps a language type name to its DDL column type. Unknown
// types map to TEXT.
func ddlType(lang string) string {
	switch lang {
	case "Byte", "Short":
		return "SMALLINT"
	case "Int", "Integer":
		return "INT"
	case "Long":
		return "BIGINT"
	case "Float":
		return "REAL"
	case "Double":
		return "DOUBLE"
	case "BigDecimal":
		return "NUMERIC"
	case "Boolean":
		return "BOOLEAN"
	case "LocalDate":
		return "DATE"
	case "LocalTime":
		return "TIME"
	case "Instant", "LocalDateTime", "Timestamp":
		return "TIMESTAMP"
	case "UUID":
		return "UUID"
	case "String":
		return "VARCHAR(255)"
	case "byte[]", "ByteArray":
		return "BLOB"
	default:
		return "TEXT"
	}
}
