package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/wingworks/internal/core/collision"
	"github.com/zeusync/wingworks/internal/core/geometry"
	"github.com/zeusync/wingworks/internal/core/observability/log"
)

// ResolverConfig carries everything needed to assemble a resolver.
type ResolverConfig struct {
	Polygon  *geometry.Polygon
	Circles  []geometry.Circle
	Workers  int
	LogLevel log.Level
}

// ResolverSet provides a logger and a resolver from a ResolverConfig.
var ResolverSet = wire.NewSet(ProvideLogger, ProvideResolver)

// ProvideLogger returns the process logger at the configured level.
func ProvideLogger(cfg ResolverConfig) log.Log {
	logger := log.Provide()
	logger.SetLevel(cfg.LogLevel)
	return logger
}

func ProvideResolver(cfg ResolverConfig, logger log.Log) (*collision.Resolver, error) {
	opts := []collision.Option{
		collision.WithLogger(logger),
		collision.WithCircles(cfg.Circles...),
	}
	if cfg.Workers > 0 {
		opts = append(opts, collision.WithWorkers(cfg.Workers))
	}
	return collision.NewResolver(cfg.Polygon, opts...)
}
