package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/inspect"
)

var insPreview int

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Check a file locally before uploading it",
	Long: `Inspect runs the same checks the upload command runs (accepted file type,
size limit) and, for PDF, DOCX and plain-text files, shows a preview of the
text it could extract without the service.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := inspect.File(args[0], insPreview)
		if err != nil {
			return err
		}
		fmt.Println("[FILE]")
		fmt.Printf("Name: %s\n", p.Name)
		fmt.Printf("Type: %s\n", p.MediaType)
		fmt.Printf("Size: %d bytes\n", p.Size)
		if p.Pages > 0 {
			fmt.Printf("Pages: %d\n", p.Pages)
		}
		if p.Text != "" {
			fmt.Println("\n[PREVIEW]")
			fmt.Println(p.Text)
		}
		if p.Warning != "" {
			fmt.Printf("\n⚠ Warning: %s\n", p.Warning)
		}
		fmt.Println("\n✓ File is accepted for upload")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&insPreview, "preview", 400, "max runes of extracted text to show (0 = all)")
}
