package fs

import (
	"os"
	"runtime"

	"github.com/adrg/xdg"
	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// CodeOpenFS wraps the filesystem operations used by the server.
type CodeOpenFS interface {
	UserConfigDir() (string, error)
	UserHomeDir() (string, error)
	MkdirAll(path string) error
	FileExists(path string) (bool, error)
	Open(name string) (*os.File, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data string) error
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new CodeOpenFS.
func New() CodeOpenFS {
	return fsImpl{}
}

// UserConfigDir returns the per-user configuration directory: XDG_CONFIG_HOME rules on Unix-like systems,
// the roaming %AppData% directory on Windows.
func (fsImpl) UserConfigDir() (string, error) {
	return userConfigDir(runtime.GOOS, xdg.ConfigHome)
}

// xdg.ConfigHome is %LOCALAPPDATA% on Windows, so the roaming directory comes from os instead.
func userConfigDir(goos, xdgConfigHome string) (string, error) {
	if goos == "windows" || xdgConfigHome == "" {
		return os.UserConfigDir()
	}
	return xdgConfigHome, nil
}

// UserHomeDir returns the current user's home directory.
func (fsImpl) UserHomeDir() (string, error) {
	if xdg.Home == "" {
		return os.UserHomeDir()
	}
	return xdg.Home, nil
}

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, 0o755) }

// Open opens a file for reading
func (fsImpl) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data string) error {
	return os.WriteFile(name, []byte(data), 0o644)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
