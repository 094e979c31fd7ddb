package controller

import (
	"github.com/code-open/code-open-server/src/codeopen/controller/codeopen"
	"go.uber.org/fx"
)

// Module provides the controllers into an Fx application.
var Module = fx.Options(
	fx.Provide(codeopen.New),
)
