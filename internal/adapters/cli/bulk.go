package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todoapp/internal/app/board"
	"github.com/jsamuelsen11/todoapp/internal/app/fanout"
	"github.com/jsamuelsen11/todoapp/internal/domain/todo"
)

func newToggleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Flip the completed flag of one or more todos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			client := opts.client()
			results := fanout.Run(cmd.Context(), opts.deps.Workers, ids, func(ctx context.Context, id int64) (*todo.Todo, error) {
				current, err := client.GetTodo(ctx, id)
				if err != nil {
					return nil, err
				}
				return client.UpdateTodo(ctx, id, board.TogglePatch(*current))
			})

			return report(cmd, opts.logger(), "toggle", results, func(w io.Writer, t *todo.Todo) error {
				_, err := fmt.Fprintf(w, "#%d %s %s\n", t.ID, checkbox(t.Completed), t.Title)
				return err
			})
		},
	}
}

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete one or more todos",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			client := opts.client()
			results := fanout.Run(cmd.Context(), opts.deps.Workers, ids, func(ctx context.Context, id int64) (int64, error) {
				return id, client.DeleteTodo(ctx, id)
			})

			return report(cmd, opts.logger(), "rm", results, func(w io.Writer, id int64) error {
				_, err := fmt.Fprintf(w, "Deleted #%d\n", id)
				return err
			})
		},
	}
}

// report prints successes to stdout and failures to stderr, in input order.
// It fails when any id failed.
func report[R any](cmd *cobra.Command, logger *slog.Logger, op string, results []fanout.Result[int64, R], ok func(io.Writer, R) error) error {
	for _, r := range results {
		if r.Err != nil {
			logger.WarnContext(cmd.Context(), "bulk item failed",
				slog.String("operation", op),
				slog.Int64("id", r.Item),
				slog.Any("error", r.Err),
			)
			if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "#%d: %v\n", r.Item, r.Err); err != nil {
				return err
			}
			continue
		}
		if err := ok(cmd.OutOrStdout(), r.Value); err != nil {
			return err
		}
	}

	if failed := fanout.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%s: %d of %d failed", op, len(failed), len(results))
	}
	return nil
}

// parseIDs converts arguments to todo ids. Any bad argument fails the whole
// command before a request is made.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q: must be a positive integer", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
