package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teachkit/teachkit/internal/pipeline"
)

func newFormatCmd() *cobra.Command {
	var input, templatePath, output string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Reformat a worksheet to match a reference template",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			oracle, err := newOracle(cmd.Context(), settings)
			if err != nil {
				return err
			}

			source, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			reference, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("read template: %w", err)
			}

			out, stats, err := pipeline.New(oracle).FormatDocument(cmd.Context(), source, reference)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d items, %d paragraphs)\n",
				output, stats.Items, stats.Paragraphs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "source .docx to reformat")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "reference .docx whose styling to match")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination .docx")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
