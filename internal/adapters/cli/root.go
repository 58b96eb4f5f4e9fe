// Package cli holds the cobra commands of the todo client. The root command
// opens the terminal UI; subcommands make one-shot calls against the API.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todoapp/internal/ports"
)

// Client is what the commands need from the API adapter.
type Client interface {
	ports.TodoClient
	ports.HealthChecker
}

// Deps are the collaborators the commands are built from.
type Deps struct {
	// BaseURL is the configured API root; --api-url overrides it.
	BaseURL string
	// Workers bounds concurrent calls in toggle and rm.
	Workers int
	Logger  *slog.Logger
	// Version is printed by --version.
	Version string

	NewClient func(baseURL string) Client
	RunTUI    func(ctx context.Context, client ports.TodoClient) error
}

type rootOptions struct {
	deps   Deps
	apiURL string
}

func (o *rootOptions) client() Client {
	return o.deps.NewClient(o.apiURL)
}

func (o *rootOptions) logger() *slog.Logger {
	if o.deps.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.deps.Logger
}

// NewRootCommand builds the todo command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	opts := &rootOptions{deps: deps}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage your todo list",
		Long: `todo talks to the todo API. Run it without arguments for an interactive
board, or use a subcommand for a single action.`,
		Version:       deps.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger().DebugContext(cmd.Context(), "starting board", slog.String("api_url", opts.apiURL))
			if err := deps.RunTUI(cmd.Context(), opts.client()); err != nil {
				return fmt.Errorf("running board: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", deps.BaseURL, "todo API base URL")

	cmd.AddCommand(
		newListCommand(opts),
		newAddCommand(opts),
		newShowCommand(opts),
		newToggleCommand(opts),
		newRemoveCommand(opts),
		newPingCommand(opts),
	)

	return cmd
}
