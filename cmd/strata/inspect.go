package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/strata/metadata"
	"github.com/syssam/strata/schema"
	"github.com/syssam/strata/schema/sqltype"
)

// dbFlags are the connection flags shared by the commands that talk to
// a live database.
type dbFlags struct {
	driver string
	dsn    string
	schema string
	tables []string
}

func (f *dbFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.driver, "driver", "postgres", "database driver (postgres, mysql, sqlite)")
	cmd.Flags().StringVar(&f.dsn, "dsn", "", "database connection string")
	cmd.Flags().StringVar(&f.schema, "schema", "public", "database schema to inspect")
	cmd.Flags().StringSliceVar(&f.tables, "tables", nil, "tables to include (default: all)")
	_ = cmd.MarkFlagRequired("dsn")
}

// inspect opens the database, enumerates the schema and resolves it
// into tables. The connection is held only for the duration of the
// call.
func (f *dbFlags) inspect(cmd *cobra.Command) ([]*schema.Table, error) {
	db, err := sql.Open(f.driver, f.dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", f.driver, err)
	}
	defer db.Close()

	var insp schema.Inspector
	switch f.driver {
	case "sqlite":
		insp = schema.NewSQLiteInspector(db)
	case "mysql":
		insp = schema.NewSQLInspector(db, f.schema).WithFlavor(schema.MySQL)
	default:
		insp = schema.NewSQLInspector(db, f.schema)
	}
	return schema.Inspect(cmd.Context(), insp, f.tables)
}

func inspectCmd() *cobra.Command {
	var (
		conn        dbFlags
		basePackage string
		lang        string
		snapshots   string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Introspect a database schema into entity metadata snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := conn.inspect(cmd)
			if err != nil {
				return err
			}
			mds, err := metadata.BuildAll(tables,
				metadata.WithBasePackage(basePackage),
				metadata.WithLang(sqltype.Lang(lang)),
			)
			if err != nil {
				return err
			}
			store := metadata.NewSnapshotStore(snapshots)
			for _, md := range mds {
				if err := store.Save(md); err != nil {
					return err
				}
				slog.Info("snapshot saved",
					"class", md.ClassName,
					"table", md.TableName,
					"fields", len(md.Fields),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inspected %d tables into %s\n", len(mds), snapshots)
			return nil
		},
	}

	conn.register(cmd)
	cmd.Flags().StringVar(&basePackage, "base-package", "", "base package for the generated layers")
	cmd.Flags().StringVar(&lang, "lang", "java", "target language (java, kotlin)")
	cmd.Flags().StringVar(&snapshots, "snapshots", ".strata/snapshots", "snapshot directory")
	return cmd
}
