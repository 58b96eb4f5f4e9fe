package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todoapp/internal/platform/health"
)

func newPingCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the todo API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := health.New()
			registry.Register(opts.client())

			results := registry.CheckAll(cmd.Context())

			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			sort.Strings(names)

			var failed int
			for _, name := range names {
				status := "ok"
				if err := results[name]; err != nil {
					status = err.Error()
					failed++
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", name, opts.apiURL, status); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("ping: %d check(s) failed", failed)
			}
			return nil
		},
	}
}
