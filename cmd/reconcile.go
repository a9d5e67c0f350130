package cmd

import (
	"context"
	"fmt"

	"icevision/core/config"
	"icevision/core/database"
	"icevision/core/logger"
	"icevision/core/reconcile"
	"icevision/feature/vision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	previewBeforeID int64
	previewAfterID  int64
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile vision captures into consumption deltas",
	Long: `Reconcile compares vision capture snapshots and reports the
per-label consumption deltas between them.`,
}

// previewReconcileCmd diffs two captures without writing anything.
var previewReconcileCmd = &cobra.Command{
	Use:   "preview",
	Short: "Diff two captures and print the consumption entries",
	Long: `Diff a before and an after capture and print the consumption
entries a session close with these captures would record. Writes nothing.

Examples:
  # Preview consumption between captures 14 and 15
  reconcile preview --before 14 --after 15`,
	RunE: runPreviewReconcile,
}

func init() {
	reconcileCmd.AddCommand(previewReconcileCmd)

	previewReconcileCmd.Flags().Int64Var(&previewBeforeID, "before", 0, "Before capture id")
	previewReconcileCmd.Flags().Int64Var(&previewAfterID, "after", 0, "After capture id")
	previewReconcileCmd.MarkFlagRequired("before")
	previewReconcileCmd.MarkFlagRequired("after")

	RootCmd.AddCommand(reconcileCmd)
}

func runPreviewReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	l.Info("Previewing reconciliation",
		zap.Int64("before", previewBeforeID),
		zap.Int64("after", previewAfterID),
	)

	entries, err := reconcile.Preview(ctx, vision.NewStore(db), previewBeforeID, previewAfterID)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No consumption detected.")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%-30s %d\n", entry.Label, entry.Quantity)
	}
	return nil
}
