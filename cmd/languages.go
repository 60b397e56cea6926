package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported output languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		def := ""
		if cfg != nil {
			def = cfg.DefaultLanguage
		}
		for _, code := range lang.Codes() {
			if code == def {
				fmt.Printf("- %s: %s (default)\n", code, lang.DisplayName(code))
				continue
			}
			fmt.Printf("- %s: %s\n", code, lang.DisplayName(code))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
