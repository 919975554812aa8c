// Package config loads spacelint settings from spacelint.toml or
// .spacelint.yaml and resolves them into engine and driver options.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"spacelint/internal/diag"
	"spacelint/internal/grammar"
	"spacelint/internal/rules"
)

var (
	// ErrUnknownRule is returned for a rule key that names no catalog rule.
	ErrUnknownRule = rules.ErrUnknownRule
	// ErrUnknownKey is returned for a settings key the schema does not know.
	ErrUnknownKey = errors.New("unknown config key")
)

// Config is the file schema. Zero values mean "not set"; Default fills them.
type Config struct {
	LanguageVersion string          `toml:"language_version" yaml:"language_version"`
	Extensions      []string        `toml:"extensions"       yaml:"extensions"`
	MaxDiagnostics  int             `toml:"max_diagnostics"  yaml:"max_diagnostics"`
	Jobs            int             `toml:"jobs"             yaml:"jobs"`
	Cache           *bool           `toml:"cache"            yaml:"cache"`
	Rules           map[string]bool `toml:"rules"            yaml:"rules"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in settings: every rule on, language 7.3.
func Default() *Config {
	cache := true
	return &Config{
		LanguageVersion: grammar.Default.String(),
		Extensions:      []string{".cs"},
		MaxDiagnostics:  500,
		Jobs:            0,
		Cache:           &cache,
		Rules:           map[string]bool{},
	}
}

// Settings are resolved, validated options.
type Settings struct {
	Profile        grammar.Profile
	Rules          rules.Selection
	Extensions     []string
	MaxDiagnostics int
	Jobs           int
	Cache          bool
}

// Resolve validates c and turns it into Settings. Rule keys may be ids or
// names in any case; rules not mentioned stay enabled.
func (c *Config) Resolve() (Settings, error) {
	v, err := grammar.ParseVersion(c.LanguageVersion)
	if err != nil {
		return Settings{}, c.wrap(err)
	}
	sel := rules.All()
	keys := make([]string, 0, len(c.Rules))
	for k := range c.Rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r, ok := rules.ByID(k)
		if !ok {
			return Settings{}, c.wrap(fmt.Errorf("%w: %q", ErrUnknownRule, k))
		}
		sel = sel.With(r.Code, c.Rules[k])
	}
	if c.MaxDiagnostics < 0 || c.Jobs < 0 {
		return Settings{}, c.wrap(errors.New("max_diagnostics and jobs must not be negative"))
	}
	cache := true
	if c.Cache != nil {
		cache = *c.Cache
	}
	return Settings{
		Profile:        grammar.NewProfile(v),
		Rules:          sel,
		Extensions:     normalizeExtensions(c.Extensions),
		MaxDiagnostics: c.MaxDiagnostics,
		Jobs:           c.Jobs,
		Cache:          cache,
	}, nil
}

func (c *Config) wrap(err error) error {
	if c.Path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", c.Path, err)
}

// Only restricts s to the given rule ids or names.
func (s *Settings) Only(ids []string) error {
	sel, err := rules.ParseSelection(ids)
	if err != nil {
		return err
	}
	s.Rules = sel
	return nil
}

// Disable switches the given rules off.
func (s *Settings) Disable(ids []string) error {
	for _, id := range ids {
		r, ok := rules.ByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRule, id)
		}
		s.Rules = s.Rules.With(r.Code, false)
	}
	return nil
}

// SetLanguage overrides the grammar profile.
func (s *Settings) SetLanguage(version string) error {
	v, err := grammar.ParseVersion(version)
	if err != nil {
		return err
	}
	s.Profile = grammar.NewProfile(v)
	return nil
}

// Enabled lists the enabled rule codes.
func (s Settings) Enabled() []diag.Code { return s.Rules.Codes() }

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return []string{".cs"}
	}
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
