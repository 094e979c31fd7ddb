package handler

import (
	controller "github.com/code-open/code-open-server/src/codeopen/controller"
	handler "github.com/code-open/code-open-server/src/codeopen/handler/codeopen"
	"go.uber.org/fx"
)

// Module provides the code-open request handling into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(handler.New),
	fx.Invoke(outputProcessInfo),
	fx.Invoke(func(h handler.Handler) {}),
)
