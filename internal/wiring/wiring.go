// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/strref/internal/adapters/config"
	_ "go.trai.ch/strref/internal/adapters/fs"
	_ "go.trai.ch/strref/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/strref/internal/app"
	_ "go.trai.ch/strref/internal/engine/collector"
)
