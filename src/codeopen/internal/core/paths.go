package core

import (
	"fmt"
	"path/filepath"

	"github.com/code-open/code-open-server/src/codeopen/internal/fs"
	"go.uber.org/fx"
)

// AppName names the per-user configuration directory of the server.
const AppName = "code-open-server"

// PathsModule provides the filesystem locations resolved at startup.
var PathsModule = fx.Provide(NewPaths)

// Paths holds the locations that are computed once at startup and passed to the components that need them.
type Paths struct {
	// ConfigBase is <user config dir>/code-open-server.
	ConfigBase string
	// SSHConfig is the user's ssh client configuration file.
	SSHConfig string
}

// NewPaths resolves the user's configuration and home directories.
func NewPaths(fsys fs.CodeOpenFS) (Paths, error) {
	configDir, err := fsys.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolving user config dir: %w", err)
	}

	home, err := fsys.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolving home dir: %w", err)
	}

	return Paths{
		ConfigBase: filepath.Join(configDir, AppName),
		SSHConfig:  filepath.Join(home, ".ssh", "config"),
	}, nil
}

// File returns name joined to the configuration base directory.
func (p Paths) File(name string) string {
	return filepath.Join(p.ConfigBase, name)
}
