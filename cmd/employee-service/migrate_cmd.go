package main

import (
	"github.com/spf13/cobra"

	"github.com/suteetoe/employee-service/pkg/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the employees table and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer log.Sync()
			return database.Close(db)
		},
	}
}
