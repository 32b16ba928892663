package cli

import (
	"fmt"
	"os"
	"strings"

	"bordero/internal/lib/document"
	"bordero/internal/lib/layout"
	"bordero/internal/lib/validation"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var output string
	var format string
	var force bool

	c := &cobra.Command{
		Use:   "render <file.yaml>",
		Short: "Render a borderò to PDF or to its JSON layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := document.ForFormat(strings.ToLower(format))
			if writer == nil {
				return fmt.Errorf("unsupported format %q", format)
			}

			rec, err := LoadRecord(args[0])
			if err != nil {
				return err
			}

			if missing := validation.Check(rec); len(missing) > 0 && !force {
				for _, fe := range missing {
					fmt.Fprintf(cmd.ErrOrStderr(), "missing %s\n", fe.Field)
				}
				return fmt.Errorf("%w: use --force to render anyway", ErrIncomplete)
			}

			doc := layout.Render(rec)

			if output == "" {
				output = strings.TrimSuffix(doc.Filename, ".pdf") + writer.Extension()
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}

			if err = writer.Write(f, doc); err != nil {
				_ = f.Close()
				return err
			}

			if err = f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d lines)\n", output, len(doc.Instructions))
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Output file (default bordero.pdf or bordero.json)")
	c.Flags().StringVar(&format, "format", document.FormatPDF, "Output format: pdf or json")
	c.Flags().BoolVar(&force, "force", false, "Render even when required fields are missing")

	return c
}
