package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/results"
	"github.com/kagazlabs/kagaz-cli/internal/utils"
	"github.com/kagazlabs/kagaz-cli/internal/view"
)

var (
	resLast       bool
	resJSON       bool
	resTranslated bool
	resPreview    int
)

var resultsCmd = &cobra.Command{
	Use:   "results [document-id]",
	Short: "Fetch and render a document's analysis",
	Example: `  kagaz results 66c8aa090a63cf3a80ef1a2b
  kagaz results --last --translated
  kagaz results 66c8aa090a63cf3a80ef1a2b --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		if resLast {
			h, err := loadHistory()
			if err != nil {
				return err
			}
			e, ok := h.Last()
			if !ok {
				return fmt.Errorf("no uploads recorded yet")
			}
			id = e.DocumentID
		}

		client := newClient()
		session := results.NewSession(client)
		st := session.Fetch(cmd.Context(), id)
		switch st.Status {
		case results.StatusLoaded:
			// fall through to rendering
		case results.StatusNotFound:
			return fmt.Errorf("document %s was not found (it may have been removed)", id)
		default:
			if errors.Is(st.Err, results.ErrMissingID) {
				return fmt.Errorf("no document id given (pass an id or use --last)")
			}
			return st.Err
		}

		if resJSON {
			b, err := utils.PrettyJSON(st.Document)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		fmt.Print(view.Render(st.Document, view.Options{
			ShowTranslation: resTranslated,
			AudioURL:        client.AudioURL,
			MaxContentRunes: resPreview,
		}))
		if resTranslated && !view.TranslationOffered(st.Document) {
			fmt.Fprintln(os.Stderr, "⚠ Warning: no translation available for this document")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.Flags().BoolVar(&resLast, "last", false, "show the most recently uploaded document")
	resultsCmd.Flags().BoolVar(&resJSON, "json", false, "emit the raw record as JSON")
	resultsCmd.Flags().BoolVarP(&resTranslated, "translated", "t", false, "show the translated text when available")
	resultsCmd.Flags().IntVar(&resPreview, "preview", 400, "max runes of extracted text to show (0 = all)")
}
