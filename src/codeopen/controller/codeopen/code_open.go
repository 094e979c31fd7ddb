// Package codeopen implements opening a remote directory in the editor.
package codeopen

import (
	"context"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/gateway/editor"
	"github.com/code-open/code-open-server/src/codeopen/repository/nametable"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller orchestrates the handling of each request.
type Controller interface {
	// Open resolves the host of info through the name table and launches the editor on the result.
	Open(ctx context.Context, info entity.CodeOpenInfo) error
}

type controller struct {
	names  nametable.Repository
	editor editor.Gateway
	logger *zap.SugaredLogger
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	NameTable nametable.Repository
	Editor    editor.Gateway
	Logger    *zap.SugaredLogger
}

// New creates a new Controller.
func New(p Params) Controller {
	return &controller{
		names:  p.NameTable,
		editor: p.Editor,
		logger: p.Logger,
	}
}

// Resolve replaces the host name of info with its alias when the table has one.
// Names that are already aliases are looked up like any other.
func Resolve(info entity.CodeOpenInfo, table nametable.Table) entity.CodeOpenInfo {
	alias, ok := table.Lookup(info.RemoteHostName)
	if !ok {
		return info
	}
	return info.WithRemoteHostName(alias)
}

func (c *controller) Open(ctx context.Context, info entity.CodeOpenInfo) error {
	resolved := Resolve(info, c.names.Table())
	c.logger.Infow("opening remote directory",
		"host", info.RemoteHostName,
		"resolvedHost", resolved.RemoteHostName,
		"dir", resolved.RemoteDirFullPath,
	)
	return c.editor.Open(ctx, resolved)
}
