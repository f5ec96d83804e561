//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/wingworks/internal/core/collision"
)

func InitializeResolver(cfg ResolverConfig) (*collision.Resolver, error) {
	wire.Build(ResolverSet)
	return nil, nil
}
