package serverinfofile

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/code-open/code-open-server/src/codeopen/internal/core"
	"github.com/code-open/code-open-server/src/codeopen/internal/fs"
	"github.com/segmentio/encoding/json"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyInfoFile   = "serverInfoFileName"
	_defaultInfoFileName = "server-info.json"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ServerInfoFile manages the contents of a single server info file.
// Local tools read it to discover where the running server listens.
type ServerInfoFile interface {
	UpdateField(key string, value string) error
}

type module struct {
	infofile     string
	fs           fs.CodeOpenFS
	logger       *zap.SugaredLogger
	fileContents map[string]string
	written      bool
	mu           sync.Mutex
}

// Params define values to be used by ServerInfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	FS        fs.CodeOpenFS
	Paths     core.Paths
}

// New creates a new ServerInfoFile located in the configuration base directory.
func New(p Params) (ServerInfoFile, error) {
	m := &module{
		fs:           p.FS,
		logger:       p.Logger,
		fileContents: make(map[string]string),
	}

	name, err := processConfig(p.Config)
	if err != nil {
		return nil, err
	}
	m.infofile = p.Paths.File(name)

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return m, nil
}

// OnStop removes the file if it was written during this run.
func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.written {
		return nil
	}
	if err := m.fs.Remove(m.infofile); err != nil {
		return fmt.Errorf("removing info file: %w", err)
	}
	m.written = false
	return nil
}

func (m *module) UpdateField(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fileContents[key] = value
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.infofile)); err != nil {
		return fmt.Errorf("creating info file directory: %w", err)
	}
	if err := m.fs.WriteFile(m.infofile, string(jsonOutput)); err != nil {
		return fmt.Errorf("creating info file: %w", err)
	}
	m.written = true
	m.logger.Infow("connection info saved", zap.String("file", m.infofile), zap.String(key, value))
	return nil
}

func processConfig(cfg config.Provider) (string, error) {
	val := cfg.Get(_configKeyInfoFile)
	if !val.HasValue() {
		return _defaultInfoFileName, nil
	}

	var name string
	if err := val.Populate(&name); err != nil {
		// incorrectly formatted config
		return "", fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}
	if name == "" {
		return "", fmt.Errorf("missing field %q in config", _configKeyInfoFile)
	}
	return name, nil
}
