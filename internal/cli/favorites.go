package cli

import (
	"fmt"

	"github.com/pfrederiksen/weather-cli/internal/favorites"
	"github.com/pfrederiksen/weather-cli/internal/report"
	"github.com/spf13/cobra"
)

// newFavoritesCmd creates the favorites subcommand and its children
func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage saved city queries",
		Long: `Manage the list of saved city queries. Saved queries keep their
verbosity suffix and are looked up when weather-cli runs without arguments.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <city[+|++]>",
			Short: "Save a city query",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				// Reject queries that would never resolve
				if _, err := report.ParseQuery(args[0]); err != nil {
					return err
				}

				store, err := favorites.New(dataDir(cmd))
				if err != nil {
					return fmt.Errorf("initializing favorites: %w", err)
				}

				added, err := store.Add(args[0])
				if err != nil {
					return err
				}
				if !added {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is already saved\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <city[+|++]>",
			Short: "Remove a saved city query",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := favorites.New(dataDir(cmd))
				if err != nil {
					return fmt.Errorf("initializing favorites: %w", err)
				}

				removed, err := store.Remove(args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("%s is not saved", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved city queries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := favorites.New(dataDir(cmd))
				if err != nil {
					return fmt.Errorf("initializing favorites: %w", err)
				}

				queries, err := store.List()
				if err != nil {
					return err
				}
				if len(queries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No favorites saved.")
					return nil
				}
				for _, q := range queries {
					fmt.Fprintln(cmd.OutOrStdout(), q)
				}
				return nil
			},
		},
	)

	return cmd
}
