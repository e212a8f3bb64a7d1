package lint

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a configured check instance from its option map.
// Option validation happens here, before any traversal: an unrecognized
// or out-of-range option is a setup failure and no file is processed.
type Factory func(opts map[string]any) (Check, error)

// CheckDef describes one registered check for discovery and tooling.
type CheckDef struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"default_severity" yaml:"default_severity"`
	ConfigKeys  []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`

	New Factory `json:"-" yaml:"-"`
}

// globalRegistry is the single global registry for all checks.
var globalRegistry = &registry{
	checks: make(map[string]CheckDef),
}

type registry struct {
	mu     sync.RWMutex
	checks map[string]CheckDef
}

// Register adds a check to the global registry.
// Call this from init() functions in check packages.
func Register(def CheckDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks[def.Name] = def
}

// GetAll returns all registered checks sorted by name.
func GetAll() []CheckDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]CheckDef, 0, len(globalRegistry.checks))
	for _, def := range globalRegistry.checks {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// GetByName returns a check definition by its name.
func GetByName(name string) (CheckDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.checks[name]
	return def, ok
}

// Count returns the number of registered checks.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.checks)
}

// Clear removes all registered checks. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.checks = make(map[string]CheckDef)
}

// Instantiate builds the enabled, configured check instances for a run:
// every registered check not disabled by cfg, constructed with its
// option map. Construction errors are configuration errors and abort
// the setup.
func Instantiate(cfg *Config) ([]Check, error) {
	var checks []Check
	for _, def := range GetAll() {
		if cfg.IsDisabled(def.Name) {
			continue
		}
		check, err := def.New(cfg.GetCheckOptions(def.Name))
		if err != nil {
			return nil, fmt.Errorf("configuring check %s: %w", def.Name, err)
		}
		checks = append(checks, check)
	}
	return checks, nil
}
