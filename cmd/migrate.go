package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jansampark/fieldwatch/migration"
)

// migrateCommand データベースマイグレーションコマンド
func migrateCommand() *cobra.Command {
	var dropDB bool

	cmd := cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		Run: func(_ *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			if dropDB {
				logger.Info("resetting database...")
				if err := migration.DropAll(engine); err != nil {
					logger.Fatal("failed to reset database", zap.Error(err))
				}
				logger.Info("all tables were dropped")
			}

			logger.Info("migrating database...")
			if _, err := migration.Migrate(engine); err != nil {
				logger.Fatal("failed to migrate database", zap.Error(err))
			}
			logger.Info("finished")
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dropDB, "reset", false, "whether to truncate database (drop all tables)")

	return &cmd
}
