package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/lang"
	"github.com/kagazlabs/kagaz-cli/internal/utils"
)

var (
	listLimit int
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently analyzed documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := newClient().ListDocuments(cmd.Context(), listLimit)
		if err != nil {
			return err
		}
		if listJSON {
			b, err := utils.PrettyJSON(docs)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		if len(docs) == 0 {
			fmt.Println("(no documents)")
			return nil
		}
		for _, d := range docs {
			fmt.Printf("- %s: %s (%s)", d.ID, d.Title, lang.DisplayName(d.Language))
			if d.CreatedAt != "" {
				fmt.Printf("  uploaded %s", d.CreatedAt)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "maximum number of documents to list")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit the records as JSON")
}
