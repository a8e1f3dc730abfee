package cmd

import (
	"github.com/SyedqaderEng/financeOS-sub001/internal/db"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()
			return db.RunMigrations(database.DB, cfg.DBDriver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()
			return db.MigrateDown(database.DB, cfg.DBDriver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, closeFn, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeFn()
			return db.MigrationStatus(database.DB, cfg.DBDriver)
		},
	})

	return cmd
}
