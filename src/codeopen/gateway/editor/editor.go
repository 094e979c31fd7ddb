package editor

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/internal/errors"
	"github.com/code-open/code-open-server/src/codeopen/internal/executor"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyBinary = "editor.binary"
	_remoteFlag      = "--remote"
	_remotePrefix    = "ssh-remote+"
)

// Module provides the editor gateway into an Fx application.
var Module = fx.Provide(New)

// Gateway launches the editor against a remote directory.
type Gateway interface {
	// Open starts the editor detached and returns once the process has been spawned.
	Open(ctx context.Context, info entity.CodeOpenInfo) error
}

type gateway struct {
	binary   string
	executor executor.Executor
	logger   *zap.SugaredLogger
	stats    tally.Scope
}

// Params define values to be used by the editor gateway.
type Params struct {
	fx.In

	Config   config.Provider
	Executor executor.Executor
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
}

// New creates a Gateway for the configured editor binary.
func New(p Params) (Gateway, error) {
	binary, err := processConfig(p.Config)
	if err != nil {
		return nil, err
	}

	return &gateway{
		binary:   binary,
		executor: p.Executor,
		logger:   p.Logger,
		stats:    p.Stats,
	}, nil
}

// DefaultBinary is the editor launcher for the given operating system.
func DefaultBinary(goos string) string {
	if goos == "windows" {
		return "code.cmd"
	}
	return "code"
}

// Args are the editor arguments that open dir on host over ssh.
func Args(info entity.CodeOpenInfo) []string {
	return []string{_remoteFlag, _remotePrefix + info.RemoteHostName, info.RemoteDirFullPath}
}

func (g *gateway) Open(ctx context.Context, info entity.CodeOpenInfo) error {
	// Not CommandContext: the editor outlives the request.
	cmd := exec.Command(g.binary, Args(info)...)
	if err := g.executor.Start(cmd); err != nil {
		return &errors.SpawnError{Binary: g.binary, Err: err}
	}

	g.stats.Counter("editor_launches").Inc(1)
	g.logger.Infow("editor launched", "host", info.RemoteHostName, "dir", info.RemoteDirFullPath)
	return nil
}

func processConfig(cfg config.Provider) (string, error) {
	val := cfg.Get(_configKeyBinary)
	if !val.HasValue() {
		return DefaultBinary(runtime.GOOS), nil
	}

	var binary string
	if err := val.Populate(&binary); err != nil {
		return "", fmt.Errorf("getting config field %q: %w", _configKeyBinary, err)
	}
	if binary == "" {
		return DefaultBinary(runtime.GOOS), nil
	}
	return binary, nil
}
