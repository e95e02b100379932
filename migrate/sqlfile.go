package migrate

import (
	"fmt"
	"strings"
)

// renderSQL renders a delta as a timestamp-versioned plain-SQL script
// under db/migration.
func renderSQL(delta *Delta, version string) *Script {
	desc := "alter table " + delta.Table
	var b strings.Builder
	for _, c := range delta.Changes {
		if c.Destructive() {
			b.WriteString("-- destructive: data in the dropped column is lost\n")
		}
		b.WriteString(sqlStatement(delta.Table, c))
		b.WriteByte('\n')
	}
	return &Script{
		Dialect:     DialectVersionedSQL,
		Version:     version,
		Description: desc,
		Content:     b.String(),
		Dir:         "db/migration",
		FileName:    version + "__" + Slug(desc) + ".sql",
	}
}

func sqlStatement(table string, c Change) string {
	switch c := c.(type) {
	case DropForeignKey:
		return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s;", table, c.Constraint)
	case DropColumn:
		return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;", table, c.Name)
	case AddColumn:
		var b strings.Builder
		fmt.Fprintf(&b, "ALTER TABLE %s ADD COLUMN %s %s", table, c.Name, c.Type)
		if c.Default != nil {
			fmt.Fprintf(&b, " DEFAULT %s", *c.Default)
		}
		if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		b.WriteByte(';')
		return b.String()
	case AlterColumn:
		null := "SET NOT NULL"
		if c.Nullable {
			null = "DROP NOT NULL"
		}
		return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s;\nALTER TABLE %s ALTER COLUMN %s %s;",
			table, c.Name, c.Type, table, c.Name, null)
	case AddForeignKey:
		return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s);",
			table, c.Constraint, c.Column, c.RefTable, c.RefColumn)
	default:
		return ""
	}
}
