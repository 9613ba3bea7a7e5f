// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/freighter/internal/adapters/archive"
	_ "go.trai.ch/freighter/internal/adapters/config"
	_ "go.trai.ch/freighter/internal/adapters/fs"
	_ "go.trai.ch/freighter/internal/adapters/logger"
	_ "go.trai.ch/freighter/internal/adapters/runner"
	// Register app nodes.
	_ "go.trai.ch/freighter/internal/app"
)
