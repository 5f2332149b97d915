package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/parser"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/zone"
)

var parseFile string

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Dry-run the message parser on a listing message",
	Long: `Parse a listing message without touching the database. Reads the message
from --file, or from stdin when no file is given, and prints the extracted
fields, the derived zone and any validation failure.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "file holding the message (default: stdin)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var text []byte
	var err error
	if parseFile != "" {
		text, err = os.ReadFile(parseFile)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}

	sub, err := parser.New(parser.Config{}).Parse(string(text))
	var vErr *parser.ValidationError
	if errors.As(err, &vErr) {
		color.Red("Validation failed: %v", vErr)
		return nil
	}
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return err
	}
	color.Green("Parsed successfully")
	fmt.Println(string(payload))
	fmt.Printf("Zone: %s\n", color.CyanString(string(zone.Classify(sub.State))))
	if sub.MediaExpected() {
		color.Yellow("Media expected: this message would open a draft session")
	}
	return nil
}
