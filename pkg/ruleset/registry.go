package ruleset

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry is a thread-safe in-memory store of loaded rules, keyed by
// name. Updates replace the whole set atomically so readers always see a
// consistent rule set.
type Registry struct {
	mu       sync.RWMutex
	rules    map[string]*Rule
	version  string
	loadTime time.Time
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:    make(map[string]*Rule),
		loadTime: time.Now(),
	}
}

// Register adds a rule to the registry, replacing any rule with the same
// name.
func (r *Registry) Register(rl *Rule) error {
	if rl == nil {
		return &RegistryError{Operation: "register", Message: "rule cannot be nil"}
	}
	if rl.Name == "" {
		return &RegistryError{Operation: "register", Message: "rule name cannot be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules[rl.Name] = rl
	r.version = computeVersion(r.rules)
	r.loadTime = time.Now()
	return nil
}

// ReplaceAll atomically swaps the entire rule set.
func (r *Registry) ReplaceAll(rules []*Rule) error {
	next := make(map[string]*Rule, len(rules))
	for _, rl := range rules {
		if rl == nil {
			return &RegistryError{Operation: "replace", Message: "rule cannot be nil"}
		}
		if rl.Name == "" {
			return &RegistryError{Operation: "replace", Message: "rule name cannot be empty"}
		}
		if _, dup := next[rl.Name]; dup {
			return &RegistryError{Operation: "replace", Message: fmt.Sprintf("duplicate rule name %q", rl.Name)}
		}
		next[rl.Name] = rl
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = next
	r.version = computeVersion(next)
	r.loadTime = time.Now()
	return nil
}

// Get returns the rule with the given name.
func (r *Registry) Get(name string) (*Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rl, ok := r.rules[name]
	return rl, ok
}

// Rules returns all registered rules sorted by name.
func (r *Registry) Rules() []*Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Rule, 0, len(r.rules))
	for _, rl := range r.rules {
		out = append(out, rl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Version returns the content hash of the current rule set.
func (r *Registry) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// LoadTime returns when the rule set last changed.
func (r *Registry) LoadTime() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadTime
}

// computeVersion hashes the rule set content so callers can detect
// change across reloads.
func computeVersion(rules map[string]*Rule) string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		h.Write([]byte(name))
		if doc, err := json.Marshal(rules[name].Doc); err == nil {
			h.Write(doc)
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil)[:8])
}
