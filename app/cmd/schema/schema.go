// Package schema holds the cli commands that manage the sql schema of the notes table.
package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ribgsilva/notes-app/persistence/v1/schema"
	"github.com/ribgsilva/notes-app/platform/database"
	"github.com/ribgsilva/notes-app/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command builds the schema command with its create, drop and status children
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes schema of the sql database",
		Long: `Applies or rolls back the embedded migrations of the configured database.
The database is selected through DATABASE_DRIVER and DATABASE_CONNECTION_URL.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), log, func(db *sql.DB) error {
					fmt.Fprintln(cmd.OutOrStdout(), "creating schema")
					if err := schema.Create(cmd.Context(), db, sys.Configs.Database.Driver); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "created schema")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "drop",
			Aliases: []string{"delete"},
			Short:   "Roll back every applied migration",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), log, func(db *sql.DB) error {
					fmt.Fprintln(cmd.OutOrStdout(), "deleting schema")
					if err := schema.Drop(cmd.Context(), db, sys.Configs.Database.Driver); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "deleted schema")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List the migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), log, func(db *sql.DB) error {
					ms, err := schema.Status(cmd.Context(), db, sys.Configs.Database.Driver)
					if err != nil {
						return err
					}
					for _, m := range ms {
						state := "pending"
						if m.Applied {
							state = "applied"
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%05d\t%s\t%s\n", m.Version, state, m.Path)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func withDatabase(ctx context.Context, log *zap.SugaredLogger, fn func(db *sql.DB) error) error {
	sys.LoadDatabase(log)

	db, err := database.OpenSQL(ctx, sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	return fn(db)
}
