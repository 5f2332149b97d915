package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/zone"
)

var zoneCmd = &cobra.Command{
	Use:   "zone <state>",
	Short: "Show the zone a state classifies into",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state := strings.Join(args, " ")
		fmt.Printf("%s -> %s\n", state, color.CyanString(string(zone.Classify(state))))
	},
}

func init() {
	rootCmd.AddCommand(zoneCmd)
}
