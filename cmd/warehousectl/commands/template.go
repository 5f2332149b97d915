package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the listing message template",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(listing.Template())
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
