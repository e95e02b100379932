package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/syssam/strata/metadata"
	"github.com/syssam/strata/migrate"
	"github.com/syssam/strata/schema/sqltype"
)

func diffCmd() *cobra.Command {
	var (
		conn        dbFlags
		snapshots   string
		basePackage string
		lang        string
		dialect     string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Render migrations from stored snapshots to the live schema",
		Long: `diff re-inspects the database, compares each entity against its stored
snapshot and renders one migration script per changed entity. Snapshots
are updated after rendering, so running diff twice in a row produces
nothing the second time.`,
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
			target := migrate.Dialect(dialect)
			if dialect == "auto" {
				target = migrate.DetectDialect(out)
			}
			store := metadata.NewSnapshotStore(snapshots)
			rendered := 0
			for _, md := range mds {
				prev, err := store.Load(md.ClassName)
				if errors.Is(err, os.ErrNotExist) {
					// First sight of the entity: record it, nothing to
					// migrate against.
					slog.Info("new entity, snapshot recorded", "class", md.ClassName)
					if err := store.Save(md); err != nil {
						return err
					}
					continue
				}
				if err != nil {
					return err
				}
				delta := migrate.Diff(prev, md)
				if delta == nil {
					continue
				}
				script, err := migrate.Render(delta, target, migrate.Version(time.Now()))
				if err != nil {
					return err
				}
				if err := migrate.WriteScript(out, script); err != nil {
					return err
				}
				if err := store.Save(md); err != nil {
					return err
				}
				slog.Info("migration rendered",
					"class", md.ClassName,
					"dialect", script.Dialect,
					"path", script.Path(),
					"changes", len(delta.Changes),
				)
				rendered++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d migrations\n", rendered)
			return nil
		},
	}

	conn.register(cmd)
	cmd.Flags().StringVar(&snapshots, "snapshots", ".strata/snapshots", "snapshot directory")
	cmd.Flags().StringVar(&basePackage, "base-package", "", "base package for the generated layers")
	cmd.Flags().StringVar(&lang, "lang", "java", "target language (java, kotlin)")
	cmd.Flags().StringVar(&dialect, "dialect", "auto", "migration dialect (auto, versioned-sql, changelog)")
	cmd.Flags().StringVar(&out, "out", ".", "project root the migrations are written below")
	return cmd
}
