package core

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/config"
	"go.uber.org/fx"
)

const (
	_envConfigDir     = "CODE_OPEN_CONFIG_DIR"
	_defaultConfigDir = "src/codeopen/config"
	_metaFile         = "meta.yaml"
)

var ConfigModule = fx.Provide(NewConfig)

// NewConfig merges the files named in meta.yaml, later files overriding earlier ones.
// ${VAR:default} references are expanded from the environment. Listed files that do not exist are skipped.
func NewConfig() (config.Provider, error) {
	dir := getConfigDir()

	files, err := listedFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", dir)
	}

	opts := make([]config.YAMLOption, 0, len(files)+1)
	for _, f := range files {
		opts = append(opts, config.File(f))
	}
	opts = append(opts, config.Expand(os.LookupEnv))

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return provider, nil
}

// listedFiles returns the existing files meta.yaml lists, in order.
func listedFiles(dir string) ([]string, error) {
	meta, err := config.NewYAML(config.File(filepath.Join(dir, _metaFile)))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", _metaFile, err)
	}

	var names []string
	if err := meta.Get("files").Populate(&names); err != nil {
		return nil, fmt.Errorf("reading files list from %s: %w", _metaFile, err)
	}

	var files []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	return files, nil
}

func getConfigDir() string {
	if dir := os.Getenv(_envConfigDir); dir != "" {
		return dir
	}
	// Relative to the repository root.
	return _defaultConfigDir
}
