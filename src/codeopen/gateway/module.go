package gateway

import (
	"github.com/code-open/code-open-server/src/codeopen/gateway/editor"
	"go.uber.org/fx"
)

// Module provides the outbound gateways into an Fx application.
var Module = fx.Options(
	editor.Module,
)
