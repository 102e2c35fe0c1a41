package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"anota/internal/cli"
	"anota/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	var noCommit bool

	cmd := &cobra.Command{
		Use:   "chat <frase>",
		Short: "Clasifica una frase y registra el resultado",
		Long: `Clasifica una frase en lenguaje natural y, si es un movimiento de plata
con confianza suficiente, lo guarda directamente.

Examples:
  anota chat "gasté 1500 en el chino"
  anota chat "me pagaron 300k"
  anota chat "corrí 5 km en el parque"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.Join(args, " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine, err := snapshotEngine(ctx, store)
			if err != nil {
				return err
			}

			r := buildRouter(slog.Default())
			result, err := r.Route(ctx, text, engine)
			if err != nil {
				return err
			}

			cmd.Println(cli.RenderResult(result))

			if noCommit || !result.IsMoney() || result.Confidence < cli.ConfirmThreshold {
				return nil
			}

			// Balance statements describe a holding, not a transaction.
			if result.Intent == model.IntentAdjustBalance {
				return nil
			}

			movement := movementFromResult(result)
			if err := store.SaveMovement(ctx, &movement); err != nil {
				return fmt.Errorf("failed to save movement: %w", err)
			}

			cmd.Println(cli.SubtleStyle.Render("guardado " + movement.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCommit, "no-commit", false, "classify only, never save")

	return cmd
}

func movementFromResult(result model.Result) model.Movement {
	m := result.Money
	return model.Movement{
		ID:             uuid.New().String(),
		Date:           time.Now(),
		Amount:         m.Amount,
		Currency:       m.Currency,
		Merchant:       m.Merchant,
		Description:    m.Description,
		CategoryID:     m.CategoryID,
		Intent:         result.Intent,
		IsSubscription: m.IsSubscription,
	}
}
