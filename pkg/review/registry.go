package review

import (
	"sort"
	"strings"
	"sync"

	"github.com/revet-dev/revet/pkg/core"
)

// globalRegistry is the single global registry for language profiles.
var globalRegistry = &Registry{
	profiles: make(map[string]*LanguageProfile),
	exts:     make(map[string]string),
}

// Registry stores registered language profiles for discovery and dispatch.
// The classifier and the discoverer's extension allow-list are both derived
// from it, so adding a language means registering one profile.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*LanguageProfile // keyed by language tag
	exts     map[string]string           // lowercased extension -> language tag
}

// RegisterProfile adds a language profile to the global registry.
// Call this from init() functions in rule packages.
func RegisterProfile(p *LanguageProfile) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.profiles[p.Language] = p
	for _, ext := range p.Extensions {
		globalRegistry.exts[strings.ToLower(ext)] = p.Language
	}
}

// Classify maps a file extension (case-insensitive) to a language tag.
// Returns false when no registered profile claims the extension.
func Classify(ext string) (string, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	lang, ok := globalRegistry.exts[strings.ToLower(ext)]
	return lang, ok
}

// ProfileFor returns the profile bound to a language tag.
func ProfileFor(language string) (*LanguageProfile, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	p, ok := globalRegistry.profiles[language]
	return p, ok
}

// Extensions returns the sorted extension allow-list across all profiles.
func Extensions() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	exts := make([]string, 0, len(globalRegistry.exts))
	for ext := range globalRegistry.exts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsComponentExt reports whether an extension is in a profile's
// UI-component subset.
func IsComponentExt(language, ext string) bool {
	p, ok := ProfileFor(language)
	if !ok {
		return false
	}
	ext = strings.ToLower(ext)
	for _, c := range p.Components {
		if c == ext {
			return true
		}
	}
	return false
}

// Profiles returns all registered profiles sorted by language tag.
func Profiles() []*LanguageProfile {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]*LanguageProfile, 0, len(globalRegistry.profiles))
	for _, p := range globalRegistry.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
	return out
}

// AllRules returns metadata for every registered line rule and structural
// check, for the rules listing command.
func AllRules() []core.RuleInfo {
	var infos []core.RuleInfo
	for _, p := range Profiles() {
		for _, r := range p.Rules {
			infos = append(infos, core.RuleInfo{
				ID:              r.ID,
				Name:            r.Name,
				Group:           r.Group,
				Language:        p.Language,
				Description:     r.Description,
				DefaultSeverity: r.Severity,
				Type:            "line",
			})
		}
		for _, c := range p.Structural {
			infos = append(infos, core.RuleInfo{
				ID:              c.ID,
				Name:            c.Name,
				Group:           c.Group,
				Language:        p.Language,
				Description:     c.Description,
				DefaultSeverity: c.Severity,
				Type:            "structural",
			})
		}
	}
	return infos
}

// Clear removes all registered profiles. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.profiles = make(map[string]*LanguageProfile)
	globalRegistry.exts = make(map[string]string)
}
