package nametable

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/internal/core"
	"github.com/code-open/code-open-server/src/codeopen/internal/errors"
	"github.com/code-open/code-open-server/src/codeopen/internal/fs"
	"github.com/code-open/code-open-server/src/codeopen/internal/sshconfig"
	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyFileName = "nameTable.fileName"
	_defaultFileName   = "table.json"
	_emptyTable        = "{}"
)

// Module provides the name table and checks its aliases against the user's ssh config.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(checkAliases),
)

// Table maps an actual remote host name to the alias the local ssh client knows it by.
type Table map[string]string

// Lookup returns the alias for host.
func (t Table) Lookup(host string) (string, bool) {
	alias, ok := t[host]
	return alias, ok
}

// Repository is a read-only view of the name table loaded at startup.
type Repository interface {
	Table() Table
	Entries() []entity.NameMapping
	Len() int
}

type repository struct {
	table Table
}

// Params define values to be used by the name table repository.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
	FS     fs.CodeOpenFS
	Paths  core.Paths
	Stats  tally.Scope
}

// New loads the name table from the configuration base directory, creating an empty one on first run.
func New(p Params) (Repository, error) {
	name, err := processConfig(p.Config)
	if err != nil {
		return nil, err
	}

	path := p.Paths.File(name)
	table, err := Load(p.FS, path, p.Logger)
	if err != nil {
		return nil, err
	}

	r := &repository{table: table}
	p.Logger.Infow("name table loaded", "path", path, "entries", r.Len())
	for _, entry := range r.Entries() {
		p.Logger.Info(entry.String())
	}
	p.Stats.Gauge("name_table_entries").Update(float64(r.Len()))

	return r, nil
}

// Load reads the table at path. A missing, unreadable or malformed file yields an empty table,
// and "{}" is written to path before returning so the next run finds a valid file.
func Load(fsys fs.CodeOpenFS, path string, logger *zap.SugaredLogger) (Table, error) {
	table, err := read(fsys, path)
	if err == nil {
		return table, nil
	}

	logger.Infow("initializing empty name table", "path", path, "reason", err)
	if err := fsys.MkdirAll(filepath.Dir(path)); err != nil {
		return nil, &errors.TableInitError{Path: path, Err: err}
	}
	if err := fsys.WriteFile(path, _emptyTable); err != nil {
		return nil, &errors.TableInitError{Path: path, Err: err}
	}
	return Table{}, nil
}

func read(fsys fs.CodeOpenFS, path string) (Table, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	if table == nil {
		return nil, fmt.Errorf("parsing %q: not a JSON object", path)
	}
	return table, nil
}

func (r *repository) Table() Table {
	return r.table
}

// Entries returns the mappings ordered by actual host name.
func (r *repository) Entries() []entity.NameMapping {
	keys := lo.Keys(r.table)
	slices.Sort(keys)
	return lo.Map(keys, func(actual string, _ int) entity.NameMapping {
		return entity.NameMapping{Actual: actual, Alias: r.table[actual]}
	})
}

func (r *repository) Len() int {
	return len(r.table)
}

func checkAliases(r Repository, fsys fs.CodeOpenFS, paths core.Paths, logger *zap.SugaredLogger) {
	aliases := lo.Map(r.Entries(), func(m entity.NameMapping, _ int) string { return m.Alias })
	sshconfig.WarnUnknownAliases(fsys, paths.SSHConfig, aliases, logger)
}

func processConfig(cfg config.Provider) (string, error) {
	val := cfg.Get(_configKeyFileName)
	if !val.HasValue() {
		return _defaultFileName, nil
	}

	var name string
	if err := val.Populate(&name); err != nil {
		return "", fmt.Errorf("getting config field %q: %w", _configKeyFileName, err)
	}
	if name == "" {
		return "", fmt.Errorf("missing field %q in config", _configKeyFileName)
	}
	return name, nil
}
