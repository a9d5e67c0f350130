package cmd

import (
	"fmt"

	"icevision/core/config"
	"icevision/core/database"
	"icevision/core/logger"
	"icevision/feature/employee"
	"icevision/feature/ledger"
	"icevision/feature/recognition"
	"icevision/feature/session"
	"icevision/feature/vision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var checkOnly bool

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Runs the schema migration for all tables: employees, fridge_sessions,
consumption_events, vision_items and recognition_logs.

With --check no changes are made; the command reports columns the live
schema is missing and exits non-zero if any are found.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&checkOnly, "check", false, "Report missing columns without migrating")
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	models := []interface{}{
		&employee.Employee{},
		&session.FridgeSession{},
		&ledger.Event{},
		&vision.Item{},
		&recognition.Log{},
	}

	if checkOnly {
		drift := false
		for _, model := range models {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return fmt.Errorf("failed to parse model: %w", err)
			}
			table := stmt.Table

			expected := make([]string, 0, len(stmt.Schema.DBNames))
			expected = append(expected, stmt.Schema.DBNames...)

			missing, err := database.MissingColumns(db, table, expected)
			if err != nil {
				return fmt.Errorf("failed to inspect table %s: %w", table, err)
			}
			if len(missing) > 0 {
				drift = true
				l.Warn("Schema drift detected",
					zap.String("table", table),
					zap.Strings("missing_columns", missing),
				)
			}
		}
		if drift {
			return fmt.Errorf("schema is out of date, run migrate without --check")
		}
		l.Info("Schema is up to date")
		return nil
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	l.Info("Migration complete", zap.Int("tables", len(models)))
	return nil
}
