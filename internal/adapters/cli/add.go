package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todoapp/internal/app/board"
	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

var errBlankTitle = errors.New("title must not be blank")

func newAddCommand(opts *rootOptions) *cobra.Command {
	var (
		description string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Long: `Create a todo. Words after the command form the title, so quoting is
optional:

  todo add Buy milk -d "2 litres, semi-skimmed"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, ok := board.Draft(strings.Join(args, " "))
			if !ok {
				return errBlankTitle
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			in.Completed = completed

			if err := todo.ValidateNew(in); err != nil {
				return err
			}

			created, err := opts.client().CreateTodo(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("adding todo: %w", err)
			}

			opts.logger().InfoContext(cmd.Context(), "todo created", slog.Int64("id", created.ID))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created #%d %s\n", created.ID, created.Title)
			return err
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	cmd.Flags().BoolVar(&completed, "completed", false, "create the todo already completed")

	return cmd
}
