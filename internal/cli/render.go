package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/condense/internal/ingest"
	"github.com/nguyentantai21042004/condense/internal/renderer"
)

func newRenderCmd() *cobra.Command {
	var (
		output       string
		margin       float64
		keepMarkdown bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a text, markdown or PDF file into a clean PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			data, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			text, err := ingest.Extract(filepath.Base(src), "", data)
			if err != nil {
				return fmt.Errorf("extract text: %w", err)
			}

			opts := renderer.DefaultOptions()
			opts.Margin = margin
			opts.StripMarkdown = !keepMarkdown

			pdf, err := renderer.New(opts).Render(text)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(src, filepath.Ext(src)) + ".pdf"
				if output == src {
					output = strings.TrimSuffix(src, filepath.Ext(src)) + "_clean.pdf"
				}
			}
			if err := os.WriteFile(output, pdf, 0644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, len(pdf))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (default: input name with .pdf)")
	cmd.Flags().Float64Var(&margin, "margin", renderer.DefaultOptions().Margin, "page margin in millimetres")
	cmd.Flags().BoolVar(&keepMarkdown, "keep-markdown", false, "keep '#' and '**' markers in the output")

	return cmd
}
