package ruleset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mgvdev/verdict/pkg/rule/codec"
)

// FileSource loads rules from JSON and YAML files on disk. The path may
// be a single file or a directory; directories are walked recursively and
// every .json, .yaml and .yml file is loaded.
type FileSource struct {
	path     string
	registry *codec.Registry
	logger   *slog.Logger
}

// NewFileSource creates a file-based rule source. A nil codec registry
// falls back to the built-in operators.
func NewFileSource(path string, registry *codec.Registry, logger *slog.Logger) *FileSource {
	if registry == nil {
		registry = codec.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:     path,
		registry: registry,
		logger:   logger,
	}
}

// Load loads all rules from the configured path. Files that fail to
// decode are skipped with a warning so one bad file cannot take down the
// whole rule set.
func (s *FileSource) Load() ([]*Rule, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, &LoadError{Path: s.path, Cause: err}
	}

	if !info.IsDir() {
		rl, err := s.loadFile(s.path)
		if err != nil {
			return nil, err
		}
		return []*Rule{rl}, nil
	}

	var rules []*Rule
	err = filepath.Walk(s.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !hasRuleExtension(path) {
			return nil
		}

		rl, err := s.loadFile(path)
		if err != nil {
			s.logger.Warn("failed to load rule file, skipping",
				"path", path,
				"error", err,
			)
			return nil
		}

		rules = append(rules, rl)
		return nil
	})
	if err != nil {
		return nil, &LoadError{Path: s.path, Cause: err}
	}

	s.logger.Info("loaded rules from source",
		"path", s.path,
		"rule_count", len(rules),
	)

	return rules, nil
}

// ruleFile is the on-disk envelope around a rule document.
type ruleFile struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Rule        map[string]any `json:"rule" yaml:"rule"`
}

// loadFile loads a single rule file.
func (s *FileSource) loadFile(path string) (*Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	name := baseName(path)
	description := ""
	var tags []string

	var doc map[string]any
	if _, bare := raw["operator"]; bare {
		// Bare rule document; the file name names the rule.
		doc = raw
	} else {
		var file ruleFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, &LoadError{Path: path, Cause: err}
		}
		if file.Rule == nil {
			return nil, &LoadError{Path: path, Cause: fmt.Errorf(`missing "rule" document`)}
		}
		doc = file.Rule
		if file.Name != "" {
			name = file.Name
		}
		description = file.Description
		tags = file.Tags
	}

	root, err := s.registry.Decode(doc)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	rl := &Rule{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Tags:        tags,
		Root:        root,
		Doc:         root.Document(),
		SourceFile:  path,
		LoadedAt:    time.Now(),
	}

	s.logger.Debug("loaded rule file",
		"path", path,
		"rule_name", rl.Name,
	)

	return rl, nil
}

// hasRuleExtension reports whether a path looks like a rule file.
func hasRuleExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// baseName derives a rule name from a file path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
