package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/storage"
)

var logsLimit int

var logsCmd = &cobra.Command{
	Use:   "logs <number>",
	Short: "Show recent message logs for a submitter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		logs, err := storage.NewMessageLogRepository(db).ListBySender(ctx, args[0], logsLimit)
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			color.Yellow("No logs for %s", args[0])
			return nil
		}
		for _, l := range logs {
			status := color.GreenString(l.Status)
			switch l.Status {
			case listing.StatusFailure:
				status = color.RedString(l.Status)
			case listing.StatusUnverified, listing.StatusCanceled:
				status = color.YellowString(l.Status)
			}
			fmt.Printf("%s  %s  %s\n", l.CreatedAt.Format("2006-01-02 15:04:05"), status, firstLine(l.MessageBody))
			if l.ErrorMessage != "" {
				fmt.Printf("    %s\n", color.RedString(l.ErrorMessage))
			}
		}
		return nil
	},
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func init() {
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 20, "maximum entries to show")
	rootCmd.AddCommand(logsCmd)
}
