package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/five82/animeshelf/internal/app"
)

// runTUI starts the interactive view; tests swap it out.
type runTUI func(ctx context.Context, opts app.Options) error

func newRootCmd(run runTUI) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "animeshelf",
		Short: "Browse the anime catalog and keep a list of favorites",
		Long: `animeshelf shows the anime catalog as a grid of cards in the terminal.

Cards can be liked and unliked once a user is signed in; favorites are kept
in the local key-value store configured in config.toml.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), app.Options{ConfigPath: configPath})
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/animeshelf/config.toml)")

	root.AddCommand(
		newLoginCmd(&configPath),
		newLogoutCmd(&configPath),
		newFavoritesCmd(&configPath),
	)
	return root
}

func withEnv(cmd *cobra.Command, configPath string, fn func(ctx context.Context, env *app.Env) error) error {
	env, err := app.Open(app.Options{ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()
	return fn(cmd.Context(), env)
}

func newLoginCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login [user-id]",
		Short: "Sign in locally so favorites can be saved",
		Long: `Stores a user record in local storage. Without an id a random one is
generated. Signing in again with the same id keeps its favorites.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return withEnv(cmd, *configPath, func(ctx context.Context, env *app.Env) error {
				u, err := env.Favorites.Login(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%d favorites)\n", u.ID, len(u.Favorites))
				return nil
			})
		},
	}
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local user and its favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, *configPath, func(ctx context.Context, env *app.Env) error {
				if err := env.Favorites.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func newFavoritesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "Print the favorite catalog ids of the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, *configPath, func(ctx context.Context, env *app.Env) error {
				u, err := env.Favorites.CurrentUser(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if u == nil {
					fmt.Fprintln(out, "Not signed in")
					return nil
				}
				ids := slices.Clone(u.Favorites)
				slices.Sort(ids)
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			})
		},
	}
}
