// Command cartctl inspects storefront sessions from the operator's shell.
package main

import (
	"context"
	"fmt"
	"os"

	"storefront/config"
	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/storage"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// storeOpener returns the session stores and a func releasing them
type storeOpener func(ctx context.Context) (repository.SessionStores, func(context.Context) error, error)

func main() {
	if err := newRootCmd(openConfiguredStores).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(open storeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "cartctl",
		Short:         "Inspect storefront carts, session tokens and payment QR codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCartCmd(open),
		newTokenCmd(),
		newQRCmd(),
	)

	return root
}

// openConfiguredStores builds the configured KeyValueStore the way the server does
func openConfiguredStores(ctx context.Context) (repository.SessionStores, func(context.Context) error, error) {
	var stores repository.SessionStores

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			storage.NewKeyValueStore,
			storage.NewSessionStores,
		),
		fx.Populate(&stores),
	)
	if err := app.Start(ctx); err != nil {
		return nil, nil, errors.Wrap(err, "failed to open store")
	}

	return stores, app.Stop, nil
}
