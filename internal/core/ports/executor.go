// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/swan/internal/core/domain"
)

// Executor defines the interface for launching a task node's external process.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the node's command in its working directory with its
	// environment merged over the process environment.
	//
	// It returns an error carrying the command and exit code if the
	// invocation exits non-zero.
	Execute(ctx context.Context, node *domain.TaskNode) error
}
