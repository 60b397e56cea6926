package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/api"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a canned analyzed document on the service",
	Long: `Seed asks the backend to insert a pre-analyzed sample document. Useful to
smoke-test a fresh deployment without uploading a real file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := newClient().SeedTestDocument(cmd.Context())
		if err != nil {
			var unreach *api.UnreachableError
			if errors.As(err, &unreach) {
				return fmt.Errorf("analysis service not reachable at %s. Start the backend or point --base-url (or KAGAZ_BACKEND_BASE_URL) at it: %w", unreach.Host, err)
			}
			return err
		}
		fmt.Printf("✓ Test document created: %s\n", id)
		fmt.Printf("View it with: kagaz results %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
