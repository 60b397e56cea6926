package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/api"
	"github.com/kagazlabs/kagaz-cli/internal/lang"
	"github.com/kagazlabs/kagaz-cli/internal/upload"
	"github.com/kagazlabs/kagaz-cli/internal/validate"
)

var (
	upLanguage string
	upConsent  bool
	upQuiet    bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document for analysis",
	Example: `  kagaz upload scan.pdf --consent
  kagaz upload ration-card.jpg -l hi --consent`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		// Immediate feedback before the orchestrator re-checks at submission.
		if err := validate.CheckFile(file); err != nil {
			return err
		}

		language := upLanguage
		if language == "" && cfg != nil {
			language = cfg.DefaultLanguage
		}
		if language == "" {
			language = lang.Base
		}
		if !lang.Supported(language) {
			return fmt.Errorf("unknown language code %q (run 'kagaz languages' for the supported set)", language)
		}

		consent := upConsent
		if !consent && cfg != nil {
			consent = cfg.Consent
		}

		orch := upload.New(newClient())
		progressSeen := false
		st, err := orch.Submit(cmd.Context(), upload.Request{
			Path:     file,
			Language: language,
			Consent:  consent,
		}, func(pct int) {
			if !upQuiet {
				progressSeen = true
				fmt.Printf("\r⚙ Uploading... %3d%%", pct)
			}
		})
		if progressSeen {
			fmt.Println()
		}
		if err != nil {
			var (
				precond *upload.PreconditionError
				unreach *api.UnreachableError
			)
			switch {
			case errors.As(err, &precond):
				return fmt.Errorf("consent required: re-run with --consent or run 'kagaz config set consent true': %w", err)
			case errors.As(err, &unreach):
				return fmt.Errorf("analysis service not reachable at %s. Start the backend or point --base-url (or KAGAZ_BACKEND_BASE_URL) at it: %w", unreach.Host, err)
			default:
				return err
			}
		}

		fmt.Printf("✓ Document uploaded: %s (%s)\n", filepath.Base(file), lang.DisplayName(language))

		// Best effort: a failed history write never fails the upload.
		if h, herr := loadHistory(); herr == nil {
			h.Add(st.DocumentID, filepath.Base(file), language)
			if herr = h.Save(); herr != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: could not record upload history: %v\n", herr)
			}
		} else {
			fmt.Fprintf(os.Stderr, "⚠ Warning: could not record upload history: %v\n", herr)
		}

		fmt.Printf("View the analysis with: kagaz results %s\n", st.DocumentID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVarP(&upLanguage, "language", "l", "", "output language code (default from config)")
	uploadCmd.Flags().BoolVar(&upConsent, "consent", false, "consent to remote processing of this document")
	uploadCmd.Flags().BoolVar(&upQuiet, "quiet", false, "suppress progress output")
}
