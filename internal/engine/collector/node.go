package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strref/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/strref/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/strref/internal/core/ports"
)

// NodeID is the unique identifier for the collector Graft node.
const NodeID graft.ID = "engine.collector"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.SourceNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Collector, error) {
			source, err := graft.Dep[ports.LineSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(source, log), nil
		},
	})
}
