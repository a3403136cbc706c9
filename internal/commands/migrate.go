package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/estate-catalog/internal/migrate"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}
			return migrate.NewMigrator(db).Up()
		},
	}

	cmd.AddCommand(migrateStatusCmd())
	return cmd
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			migrator := migrate.NewMigrator(db)
			applied, err := migrator.AppliedVersions()
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %v", err)
			}

			fmt.Printf("%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
			for _, migration := range migrate.RegisteredMigrations() {
				status := "Pending"
				if applied[migration.Version] {
					status = "Applied"
				}
				fmt.Printf("%-16s  %-30s  %-8s\n", migration.Version, migration.Name, status)
			}
			return nil
		},
	}
}
