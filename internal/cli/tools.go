package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/teachkit/teachkit/internal/sheet"
	"github.com/teachkit/teachkit/internal/speech"
	"github.com/teachkit/teachkit/internal/video"
)

func newHeadersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headers <file.xlsx>",
		Short: "Print the header row of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			headers, err := sheet.Headers(data)
			if err != nil {
				return err
			}
			for _, h := range lo.Uniq(headers) {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
}

func newTTSCmd() *cobra.Command {
	var voice, style, output string

	cmd := &cobra.Command{
		Use:   "tts [text]",
		Short: "Synthesize speech from text or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			oracle, err := newOracle(cmd.Context(), settings)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimSpace(string(in))
			}
			if text == "" {
				return fmt.Errorf("nothing to synthesize; pass text as an argument or on stdin")
			}

			audio, err := speech.Synthesize(cmd.Context(), oracle, speech.Request{
				Text:        text,
				Voice:       voice,
				StylePrompt: style,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, audio, 0o644); err != nil {
				return fmt.Errorf("write audio: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(audio))
			return nil
		},
	}
	cmd.Flags().StringVarP(&voice, "voice", "v", "Kore", "prebuilt voice name")
	cmd.Flags().StringVarP(&style, "style", "s", "", "delivery style, e.g. \"slow and clear\"")
	cmd.Flags().StringVarP(&output, "output", "o", "speech.wav", "destination audio file")
	return cmd
}

func newYTDLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ytdl <url>",
		Short: "Resolve a YouTube URL to a direct download link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSettings(cmd); err != nil {
				return err
			}
			result, err := video.NewFetcher().Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
