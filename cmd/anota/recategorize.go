package main

import (
	"fmt"

	"anota/internal/cli"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func recategorizeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "recategorize",
		Short: "Re-evaluate every movement against the current rules",
		Long: `Re-run categorization over the whole movement history with the current
rule set. Only the category assignment changes; running it twice with the
same rules is a no-op.

Examples:
  anota recategorize
  anota recategorize --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine, err := snapshotEngine(ctx, store)
			if err != nil {
				return err
			}

			movements, err := store.ListMovements(ctx)
			if err != nil {
				return err
			}

			if len(movements) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No hay movimientos para recategorizar."))
				return nil
			}

			updated := engine.RecategorizeAll(movements)

			bar := progressbar.NewOptions(len(movements),
				progressbar.OptionSetDescription("recategorizando"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowCount(),
			)

			var changed int
			for i, m := range movements {
				_ = bar.Add(1)

				if updated[i].CategoryID == m.CategoryID {
					continue
				}
				changed++

				if dryRun {
					cmd.Printf("\n%s: %s → %s\n", m.ID, orNone(m.CategoryID), updated[i].CategoryID)
					continue
				}

				// Already-updated movements stay valid under the new rules
				// if the run is interrupted; the pass is resumable, not
				// transactional.
				if err := store.UpdateMovementCategory(ctx, m.ID, updated[i].CategoryID); err != nil {
					return fmt.Errorf("failed to update movement %s: %w", m.ID, err)
				}
			}

			_ = bar.Finish()
			cmd.Println()

			if dryRun {
				cmd.Printf("%d de %d movimientos cambiarían de categoría\n", changed, len(movements))
			} else {
				cmd.Printf("%d de %d movimientos recategorizados\n", changed, len(movements))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show changes without writing them")

	return cmd
}

func orNone(categoryID string) string {
	if categoryID == "" {
		return "(sin categoría)"
	}
	return categoryID
}
