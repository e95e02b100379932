// Command strata turns relational schemas into entity metadata, source
// artifacts and migration scripts. Correctness lives in the library
// packages; the CLI is collaborator glue around them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	// Database drivers selectable through --driver.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run", uuid.NewString())
	slog.SetDefault(log)

	rootCmd := &cobra.Command{
		Use:   "strata",
		Short: "Entity metadata, code generation and schema evolution",
		Long: `strata introspects a relational schema (or reads hand-authored entity
definitions), normalizes it into entity metadata, generates source
artifacts per feature configuration, and renders migration scripts
between metadata snapshots.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
