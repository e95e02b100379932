package schema

import (
	"context"
)

// Inspector is the narrow contract the core needs from a live database.
// Implementations enumerate tables, columns, primary keys and foreign
// keys; everything else (connection lifecycle, credentials) stays with
// the collaborator that owns the connection.
type Inspector interface {
	// Tables lists the tables of the inspected schema.
	Tables(ctx context.Context) ([]TableRef, error)
	// Columns lists the columns of a table in ordinal order.
	Columns(ctx context.Context, table string) ([]Column, error)
	// PrimaryKeys lists the primary-key column names of a table.
	PrimaryKeys(ctx context.Context, table string) ([]string, error)
	// ForeignKeys lists the foreign keys constraining a table.
	ForeignKeys(ctx context.Context, table string) ([]ForeignKey, error)
}

// Inspect enumerates the schema through the given inspector and resolves
// it into tables. Foreign keys are collected in a second pass, after all
// tables and columns are known. If include is non-empty, only the named
// tables are inspected. Failures are wrapped in IntrospectionError with
// the offending table name.
func Inspect(ctx context.Context, insp Inspector, include []string) ([]*Table, error) {
	refs, err := insp.Tables(ctx)
	if err != nil {
		return nil, NewIntrospectionError("", "listing tables", err)
	}
	wanted := make(map[string]struct{}, len(include))
	for _, n := range include {
		wanted[n] = struct{}{}
	}
	var raws []RawTable
	for _, ref := range refs {
		if len(wanted) > 0 {
			if _, ok := wanted[ref.Name]; !ok {
				continue
			}
		}
		cols, err := insp.Columns(ctx, ref.Name)
		if err != nil {
			return nil, NewIntrospectionError(ref.Name, "listing columns", err)
		}
		pks, err := insp.PrimaryKeys(ctx, ref.Name)
		if err != nil {
			return nil, NewIntrospectionError(ref.Name, "listing primary keys", err)
		}
		raws = append(raws, RawTable{
			Name:        ref.Name,
			Comment:     ref.Comment,
			Columns:     cols,
			PrimaryKeys: pks,
		})
	}
	fks := make(map[string][]ForeignKey, len(raws))
	for _, raw := range raws {
		keys, err := insp.ForeignKeys(ctx, raw.Name)
		if err != nil {
			return nil, NewIntrospectionError(raw.Name, "listing foreign keys", err)
		}
		fks[raw.Name] = keys
	}
	return ResolveForeignKeys(raws, fks)
}
