// Package main is the entry point for the swan build tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/swan/cmd/swan/commands"
	"go.trai.ch/swan/internal/app"
	"go.trai.ch/swan/internal/core/domain"
	_ "go.trai.ch/swan/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Flush recorded task progress on exit.
	defer func() { _ = components.Tracer.Close() }()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildExecutionFailed) {
			// Failure details were already logged per task.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
