package main

import (
	"strings"

	"anota/internal/cli"
	"anota/internal/model"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesDeleteCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.ListCategories(ctx)
			if err != nil {
				return err
			}

			cmd.Println(cli.TitleStyle.Render("Categorías"))
			for _, c := range categories {
				kind := ""
				if c.BuiltIn {
					kind = cli.SubtleStyle.Render(" (predefinida)")
				}
				cmd.Printf("%-16s %s%s\n", c.ID, c.Name, kind)
				if len(c.Keywords) > 0 {
					cmd.Println(cli.SubtleStyle.Render("    " + strings.Join(c.Keywords, ", ")))
				}
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		id       string
		name     string
		keywords []string
		priority int
		color    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			category := model.Category{
				ID:       id,
				Name:     name,
				Keywords: keywords,
				Priority: priority,
				Color:    color,
			}

			if err := store.CreateCategory(ctx, &category); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("Categoría " + category.ID + " creada"))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "category id (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "matching keywords")
	cmd.Flags().IntVar(&priority, "priority", 0, "keyword-fallback priority")
	cmd.Flags().StringVar(&color, "color", "", "display color")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user category (built-ins are protected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteCategory(ctx, args[0]); err != nil {
				return err
			}

			cmd.Printf("Categoría %s eliminada\n", args[0])
			return nil
		},
	}
}
