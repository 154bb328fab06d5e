// Command reactinit creates a new React application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-drift/reactinit/cmd/reactinit/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
