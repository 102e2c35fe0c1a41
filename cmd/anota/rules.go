package main

import (
	"fmt"
	"strconv"

	"anota/internal/cli"
	"anota/internal/model"

	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage category rules",
		Long: `Manage the pattern rules that assign categories to movements.
Rules are evaluated highest priority first; ties break on insertion order.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesEnableCmd(true))
	cmd.AddCommand(rulesEnableCmd(false))
	cmd.AddCommand(rulesDeleteCmd())
	cmd.AddCommand(rulesTestCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ruleSet, err := store.ListRules(ctx)
			if err != nil {
				return err
			}

			if len(ruleSet) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No hay reglas todavía. Probá: anota rules add"))
				return nil
			}

			cmd.Println(cli.TitleStyle.Render("Reglas"))
			for _, r := range ruleSet {
				state := cli.SuccessStyle.Render("on ")
				if !r.Enabled {
					state = cli.SubtleStyle.Render("off")
				}
				cmd.Printf("%4d  %s  p%-4d %-12s %-20q → %s  (%s)\n",
					r.ID, state, r.Priority, r.MatchType, r.Pattern, r.CategoryID, r.Label)
			}
			return nil
		},
	}
}

func rulesAddCmd() *cobra.Command {
	var (
		label     string
		matchType string
		pattern   string
		category  string
		priority  int
		disabled  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category rule",
		Long: `Add a rule mapping a text pattern to a category.

Examples:
  anota rules add --label "Super chino" --match contains --pattern chino --category supermercado --priority 100
  anota rules add --label "Nafta" --match starts_with --pattern ypf --category transporte
  anota rules add --label "Streaming" --match pattern --pattern "netflix|spotify" --category entretenimiento`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rule := model.Rule{
				Label:      label,
				MatchType:  model.MatchType(matchType),
				Pattern:    pattern,
				CategoryID: category,
				Priority:   priority,
				Enabled:    !disabled,
			}

			if err := store.CreateRule(ctx, &rule); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Regla %d creada", rule.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "rule name (required)")
	cmd.Flags().StringVar(&matchType, "match", string(model.MatchContains), "match type: contains, starts_with, pattern")
	cmd.Flags().StringVar(&pattern, "pattern", "", "pattern to match (required)")
	cmd.Flags().StringVar(&category, "category", "", "category id to assign (required)")
	cmd.Flags().IntVar(&priority, "priority", 0, "priority (higher wins)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the rule disabled")

	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func rulesEnableCmd(enable bool) *cobra.Command {
	use, short := "enable <id>", "Enable a rule"
	if !enable {
		use, short = "disable <id>", "Disable a rule without deleting it"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rule id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetRuleEnabled(ctx, id, enable); err != nil {
				return err
			}

			cmd.Printf("Regla %d %s\n", id, map[bool]string{true: "habilitada", false: "deshabilitada"}[enable])
			return nil
		},
	}
}

func rulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a rule permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rule id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteRule(ctx, id); err != nil {
				return err
			}

			cmd.Printf("Regla %d eliminada\n", id)
			return nil
		},
	}
}

func rulesTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <texto>",
		Short: "Show which rule wins for a sample text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			text := args[0]
			if len(args) > 1 {
				for _, a := range args[1:] {
					text += " " + a
				}
			}

			if rule := engine.Match(text); rule != nil {
				cmd.Printf("Gana la regla %d (%s, prioridad %d) → %s\n",
					rule.ID, rule.Label, rule.Priority, rule.CategoryID)
				return nil
			}

			if categoryID, ok := engine.Categorize(text); ok {
				cmd.Printf("Sin regla explícita; keywords de categoría → %s\n", categoryID)
				return nil
			}

			cmd.Println(cli.SubtleStyle.Render("Ninguna regla ni keyword matchea."))
			return nil
		},
	}
}
