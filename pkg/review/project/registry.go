package project

import (
	"sort"
	"sync"

	"github.com/revet-dev/revet/pkg/core"
)

// globalRegistry is the single global registry for project-level rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered project rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// RuleDef is a project-level rule definition. Project rules run once per
// scan over the whole discovered file set, after per-file analysis.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "PR01"
	Name        string        // Human-readable name, e.g., "project.duplicate_services"
	Group       string        // Category: "structure", "testing", "manifest", "dotnet"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       Check         // The check function
}

// Check is the function signature for project-level rule checks.
type Check func(ctx *Context) []core.Finding

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules ordered by ID, so callers that run
// or list them produce the same order on every invocation.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// AllRules returns metadata for every registered project rule.
func AllRules() []core.RuleInfo {
	var infos []core.RuleInfo
	for _, rule := range GetAll() {
		infos = append(infos, core.RuleInfo{
			ID:              rule.ID,
			Name:            rule.Name,
			Group:           rule.Group,
			Description:     rule.Description,
			DefaultSeverity: rule.Severity,
			Type:            "project",
		})
	}
	return infos
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
