package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/storage"
)

var numberLabel string

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Manage the submitter allow-list",
}

var numbersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List allow-listed numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		numbers, err := storage.NewVerifiedNumberRepository(db).List(ctx)
		if err != nil {
			return err
		}
		if len(numbers) == 0 {
			color.Yellow("No verified numbers. Nobody can submit listings.")
			return nil
		}
		for _, n := range numbers {
			fmt.Printf("%s  %s\n", color.GreenString(n.Number), n.Label)
		}
		return nil
	},
}

var numbersAddCmd = &cobra.Command{
	Use:   "add <number>",
	Short: "Allow-list a number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewVerifiedNumberRepository(db).Add(ctx, args[0], numberLabel); err != nil {
			return err
		}
		color.Green("Added %s", args[0])
		return nil
	},
}

var numbersRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a number from the allow-list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewVerifiedNumberRepository(db).Remove(ctx, args[0]); err != nil {
			return err
		}
		color.Green("Removed %s", args[0])
		return nil
	},
}

func init() {
	numbersAddCmd.Flags().StringVarP(&numberLabel, "label", "l", "", "who this number belongs to")
	numbersCmd.AddCommand(numbersListCmd, numbersAddCmd, numbersRemoveCmd)
	rootCmd.AddCommand(numbersCmd)
}
