package cli

import (
	"errors"
	"fmt"

	"bordero/internal/lib/validation"

	"github.com/spf13/cobra"
)

var ErrIncomplete = errors.New("bordero is incomplete")

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.yaml>",
		Short: "List the fields still missing before export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := LoadRecord(args[0])
			if err != nil {
				return err
			}

			missing := validation.Check(rec)
			out := cmd.OutOrStdout()

			if len(missing) == 0 {
				fmt.Fprintln(out, "OK")
				return nil
			}

			for _, fe := range missing {
				fmt.Fprintf(out, "missing %s\n", fe.Field)
			}

			return fmt.Errorf("%w: %d missing fields", ErrIncomplete, len(missing))
		},
	}
}
