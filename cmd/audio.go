package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kagazlabs/kagaz-cli/internal/api"
)

var (
	audLast    bool
	audOutput  string
	audURLOnly bool
)

var audioCmd = &cobra.Command{
	Use:   "audio [document-id]",
	Short: "Download the spoken summary of a document",
	Example: `  kagaz audio 66c8aa090a63cf3a80ef1a2b
  kagaz audio --last -o summary.wav
  kagaz audio 66c8aa090a63cf3a80ef1a2b --url`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		if audLast {
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
		if id == "" {
			return fmt.Errorf("no document id given (pass an id or use --last)")
		}

		client := newClient()
		doc, err := client.FetchDocument(cmd.Context(), id)
		if err != nil {
			return err
		}
		if doc.Analysis == nil || doc.Analysis.AudioResponse == nil || *doc.Analysis.AudioResponse == "" {
			return fmt.Errorf("document %s has no spoken summary", id)
		}
		ref := *doc.Analysis.AudioResponse

		if audURLOnly {
			fmt.Println(client.AudioURL(ref))
			return nil
		}

		out := audOutput
		if out == "" {
			out = api.AudioFilename(ref)
		}
		body, err := client.FetchAudio(cmd.Context(), ref)
		if err != nil {
			return err
		}
		defer body.Close()

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		n, err := io.Copy(f, body)
		if err != nil {
			return fmt.Errorf("download audio: %w", err)
		}
		fmt.Printf("✓ Audio saved: %s (%d bytes)\n", out, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(audioCmd)
	audioCmd.Flags().BoolVar(&audLast, "last", false, "use the most recently uploaded document")
	audioCmd.Flags().StringVarP(&audOutput, "output", "o", "", "output path (default: the audio filename)")
	audioCmd.Flags().BoolVar(&audURLOnly, "url", false, "print the audio URL instead of downloading")
}
