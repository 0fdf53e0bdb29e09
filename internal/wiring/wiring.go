// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/swan/internal/adapters/config"
	_ "go.trai.ch/swan/internal/adapters/fs"
	_ "go.trai.ch/swan/internal/adapters/logger"
	_ "go.trai.ch/swan/internal/adapters/props"
	_ "go.trai.ch/swan/internal/adapters/shell"
	_ "go.trai.ch/swan/internal/adapters/state"
	_ "go.trai.ch/swan/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/swan/internal/app"
	_ "go.trai.ch/swan/internal/engine/resolver"
	_ "go.trai.ch/swan/internal/engine/scheduler"
)
