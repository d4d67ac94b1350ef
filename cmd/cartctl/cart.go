package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"storefront/internal/infra/syncbus"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCartCmd(open storeOpener) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or clear the cart of a session",
	}
	cmd.PersistentFlags().StringVar(&sessionID, "session", "", "session id (the sid cookie)")
	_ = cmd.MarkPersistentFlagRequired("session")

	withCart := func(cmd *cobra.Command, fn func(cart usecase.CartUsecase) error) error {
		ctx := cmd.Context()

		stores, closeStores, err := open(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = closeStores(ctx) }()

		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
		cart := impl.NewCartService(stores.ForSession(sessionID), syncbus.NewBus(), logger)
		cart.Hydrate(ctx)

		return fn(cart)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the persisted cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCart(cmd, func(cart usecase.CartUsecase) error {
					return printJSON(cmd.OutOrStdout(), cart.Summary())
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the persisted cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCart(cmd, func(cart usecase.CartUsecase) error {
					if err := cart.Clear(cmd.Context()); err != nil {
						return errors.Wrap(err, "failed to clear cart")
					}

					return printJSON(cmd.OutOrStdout(), cart.Summary())
				})
			},
		},
	)

	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
