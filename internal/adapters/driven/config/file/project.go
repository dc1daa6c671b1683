package file

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nisar1406/commitmoji/internal/core/domain"
	"github.com/nisar1406/commitmoji/internal/core/ports/driven"
	"github.com/nisar1406/commitmoji/internal/logger"
)

// Ensure ProjectSource implements the interface.
var _ driven.ConfigSource = (*ProjectSource)(nil)

const (
	packageJSONName = "package.json"
	czrcName        = ".czrc"
)

// ProjectSource loads project-level configuration. Sources are tried in
// precedence order, first hit wins wholesale:
//
//  1. nearest ancestor package.json, object at config.commitmoji
//  2. nearest ancestor .czrc, object at commitmoji
//  3. .czrc in the working directory itself, object at commitmoji
//
// Missing files, unreadable files and malformed content are logged and
// treated as misses; the chain continues.
type ProjectSource struct{}

// NewProjectSource creates a project configuration source.
func NewProjectSource() *ProjectSource {
	return &ProjectSource{}
}

// Load resolves the project configuration for the given working
// directory. It never fails; with no usable source the result is an
// empty map.
func (s *ProjectSource) Load(cwd string) map[string]any {
	if cfg := s.fromPackageJSON(cwd); len(cfg) > 0 {
		return cfg
	}
	if cfg := s.fromAncestorCzrc(cwd); cfg != nil {
		return cfg
	}
	if cfg := s.fromLocalCzrc(cwd); cfg != nil {
		return cfg
	}
	return map[string]any{}
}

// fromPackageJSON reads the nearest ancestor package.json and extracts
// the object under config.commitmoji. An empty object counts as a miss.
func (s *ProjectSource) fromPackageJSON(cwd string) map[string]any {
	path := findUp(cwd, packageJSONName)
	if path == "" {
		logger.Debug("config: no %s found above %s", packageJSONName, cwd)
		return nil
	}

	raw := readJSONObject(path)
	if raw == nil {
		return nil
	}

	config, ok := raw["config"].(map[string]any)
	if !ok {
		logger.Debug("config: %s has no config section", path)
		return nil
	}
	section, ok := config[domain.NamespaceKey].(map[string]any)
	if !ok || len(section) == 0 {
		logger.Debug("config: %s has no %s section", path, domain.NamespaceKey)
		return nil
	}
	logger.Debug("config: loaded from %s", path)
	return section
}

// fromAncestorCzrc reads the nearest ancestor .czrc and extracts the
// object under the commitmoji key.
func (s *ProjectSource) fromAncestorCzrc(cwd string) map[string]any {
	path := findUp(cwd, czrcName)
	if path == "" {
		logger.Debug("config: no %s found above %s", czrcName, cwd)
		return nil
	}
	return czrcSection(path)
}

// fromLocalCzrc reads .czrc in the working directory itself, without
// any upward search.
func (s *ProjectSource) fromLocalCzrc(cwd string) map[string]any {
	return czrcSection(filepath.Join(cwd, czrcName))
}

// czrcSection reads a .czrc file and extracts the commitmoji section.
func czrcSection(path string) map[string]any {
	raw := readJSONObject(path)
	if raw == nil {
		return nil
	}

	section, ok := raw[domain.NamespaceKey].(map[string]any)
	if !ok {
		logger.Debug("config: %s has no %s section", path, domain.NamespaceKey)
		return nil
	}
	logger.Debug("config: loaded from %s", path)
	return section
}

// readJSONObject reads and parses a JSON object file. Read and parse
// failures are logged with the attempted path and reported as nil.
func readJSONObject(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("config: reading %s: %v", path, err)
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("config: parsing %s: %v", path, err)
		return nil
	}
	return raw
}

// findUp searches for name in dir and every ancestor, returning the
// full path of the nearest hit or "" when none exists.
func findUp(dir, name string) string {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
