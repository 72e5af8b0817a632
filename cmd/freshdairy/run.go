package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts the fx app and blocks until the context is cancelled or the app
// shuts itself down, then stops it with a fresh context so teardown is not
// cut short by the signal that triggered it.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "freshdairy: start: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "freshdairy: stop: %v\n", err)
		os.Exit(1)
	}
}
