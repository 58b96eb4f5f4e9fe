package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			t, err := opts.client().GetTodo(cmd.Context(), ids[0])
			if err != nil {
				return fmt.Errorf("showing todo %d: %w", ids[0], err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), renderDetail(*t))
			return err
		},
	}
}
