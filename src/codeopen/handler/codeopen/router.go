package codeopen

import (
	"context"
	"fmt"

	controller "github.com/code-open/code-open-server/src/codeopen/controller/codeopen"
	"github.com/code-open/code-open-server/src/codeopen/internal/listener"
	"github.com/code-open/code-open-server/src/codeopen/internal/protocol"
	tally "github.com/uber-go/tally/v4"
)

// Handler routes decoded requests to the controller.
type Handler interface {
	listener.Handler
}

type router struct {
	ctrl  controller.Controller
	stats tally.Scope
}

// New creates a Handler and registers it with the listener.
func New(ctrl controller.Controller, l listener.Listener, stats tally.Scope) (Handler, error) {
	r := &router{
		ctrl:  ctrl,
		stats: stats.SubScope("handler"),
	}
	if err := l.RegisterHandler(r); err != nil {
		return nil, fmt.Errorf("registering request handler: %w", err)
	}
	return r, nil
}

// HandleRequest handles routing for a single request.
func (r *router) HandleRequest(ctx context.Context, req protocol.Request) error {
	switch req := req.(type) {
	case protocol.Open:
		r.stats.Counter("open").Inc(1)
		return r.ctrl.Open(ctx, req.Info)
	default:
		return fmt.Errorf("no route for request kind %T", req)
	}
}
