package app

import (
	"context"
	"time"

	"github.com/code-open/code-open-server/src/codeopen/gateway"
	"github.com/code-open/code-open-server/src/codeopen/handler"
	"github.com/code-open/code-open-server/src/codeopen/internal/clock"
	"github.com/code-open/code-open-server/src/codeopen/internal/core"
	"github.com/code-open/code-open-server/src/codeopen/internal/executor"
	"github.com/code-open/code-open-server/src/codeopen/internal/fs"
	"github.com/code-open/code-open-server/src/codeopen/internal/listener"
	"github.com/code-open/code-open-server/src/codeopen/internal/serverinfofile"
	"github.com/code-open/code-open-server/src/codeopen/repository/nametable"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the code-open-server application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	listener.Module,
	nametable.Module,
	fs.Module,
	clock.Module,
	executor.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	core.PathsModule,
	fx.Provide(newRootScope),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)

func newRootScope(lc fx.Lifecycle) tally.Scope {
	rs, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags: map[string]string{
			"service": core.AppName,
		},
	}, 1*time.Second)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})

	return rs
}
