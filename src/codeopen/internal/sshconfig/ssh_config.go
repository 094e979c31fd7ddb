package sshconfig

import (
	"fmt"

	"github.com/code-open/code-open-server/src/codeopen/internal/fs"
	"github.com/kevinburke/ssh_config"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const _matchAll = "*"

// HostPatterns is the set of Host blocks declared in an ssh client configuration.
type HostPatterns struct {
	cfg *ssh_config.Config
}

// Load parses the ssh client configuration at path.
func Load(fsys fs.CodeOpenFS, path string) (HostPatterns, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return HostPatterns{}, fmt.Errorf("opening ssh config: %w", err)
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return HostPatterns{}, fmt.Errorf("parsing ssh config %q: %w", path, err)
	}
	return HostPatterns{cfg: cfg}, nil
}

// Matches reports whether alias is selected by at least one Host block other than a bare "Host *".
func (h HostPatterns) Matches(alias string) bool {
	if h.cfg == nil {
		return false
	}
	for _, host := range h.cfg.Hosts {
		if isCatchAll(host) {
			continue
		}
		if host.Matches(alias) {
			return true
		}
	}
	return false
}

// Unmatched returns the aliases no Host block selects, in input order without duplicates.
func (h HostPatterns) Unmatched(aliases []string) []string {
	return lo.Filter(lo.Uniq(aliases), func(alias string, _ int) bool {
		return !h.Matches(alias)
	})
}

func isCatchAll(host *ssh_config.Host) bool {
	return lo.EveryBy(host.Patterns, func(p *ssh_config.Pattern) bool {
		return p.String() == _matchAll
	})
}

// WarnUnknownAliases logs a warning for every alias the user's ssh config does not declare.
// A missing or unreadable ssh config is logged and otherwise ignored.
func WarnUnknownAliases(fsys fs.CodeOpenFS, path string, aliases []string, logger *zap.SugaredLogger) {
	if len(aliases) == 0 {
		return
	}

	exists, err := fsys.FileExists(path)
	if err != nil || !exists {
		logger.Infow("ssh config not found, skipping alias check", "path", path, "error", err)
		return
	}

	hosts, err := Load(fsys, path)
	if err != nil {
		logger.Warnw("skipping alias check", "error", err)
		return
	}

	for _, alias := range hosts.Unmatched(aliases) {
		logger.Warnw("alias has no Host entry in ssh config", "alias", alias, "path", path)
	}
}
