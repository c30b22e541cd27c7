package filter

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// Preset is a named filter expression, usually read from the config file
type Preset struct {
	Name        string `json:"name"`
	Expression  string `json:"expression"`
	Description string `json:"description,omitempty"`
}

// PresetResult holds the movies a preset matched
type PresetResult struct {
	Preset
	Matches []tmdb.Movie `json:"matches"`
}

type compiledPreset struct {
	Preset
	filter CompiledFilter
}

// Manager holds compiled presets. Names are case-insensitive.
type Manager struct {
	compiler  Compiler
	evaluator *ConcurrentEvaluator
	presets   map[string]compiledPreset
	mu        sync.RWMutex
}

// ManagerOption configures a preset manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator *ConcurrentEvaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates an empty preset manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]compiledPreset),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// viper lowercases map keys, so presets are looked up the same way
func presetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *Manager) compile(p Preset) (compiledPreset, error) {
	p.Name = presetKey(p.Name)
	if p.Name == "" {
		return compiledPreset{}, errors.New("preset name is empty")
	}
	filter, err := m.compiler.Compile(p.Expression)
	if err != nil {
		return compiledPreset{}, fmt.Errorf("failed to compile preset '%s': %w", p.Name, err)
	}
	return compiledPreset{Preset: p, filter: filter}, nil
}

// Register adds a preset or replaces one with the same name
func (m *Manager) Register(p Preset) error {
	compiled, err := m.compile(p)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.presets[compiled.Name] = compiled
	m.mu.Unlock()

	return nil
}

// RegisterAll adds several presets. Nothing is registered if any of them
// fails to compile or two of them share a name.
func (m *Manager) RegisterAll(presets ...Preset) error {
	compiled := make(map[string]compiledPreset, len(presets))

	for _, p := range presets {
		c, err := m.compile(p)
		if err != nil {
			return err
		}
		if _, dup := compiled[c.Name]; dup {
			return fmt.Errorf("duplicate preset '%s'", c.Name)
		}
		compiled[c.Name] = c
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Remove deletes a preset
func (m *Manager) Remove(name string) {
	m.mu.Lock()
	delete(m.presets, presetKey(name))
	m.mu.Unlock()
}

// Preset returns a registered preset by name
func (m *Manager) Preset(name string) (Preset, bool) {
	m.mu.RLock()
	p, ok := m.presets[presetKey(name)]
	m.mu.RUnlock()
	return p.Preset, ok
}

// Names returns the registered preset names, sorted
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Apply returns the movies one preset matches
func (m *Manager) Apply(ctx context.Context, name string, movies []tmdb.Movie) ([]tmdb.Movie, error) {
	m.mu.RLock()
	p, ok := m.presets[presetKey(name)]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("preset '%s' not found", name)
	}

	return m.evaluator.Evaluate(ctx, p.filter, movies)
}

// ApplyAll runs every preset, results sorted by name
func (m *Manager) ApplyAll(ctx context.Context, movies []tmdb.Movie) ([]PresetResult, error) {
	return m.ApplySelected(ctx, m.Names(), movies)
}

// ApplySelected runs the named presets in one batch. Results keep the order
// of names; an unknown name fails the whole call.
func (m *Manager) ApplySelected(ctx context.Context, names []string, movies []tmdb.Movie) ([]PresetResult, error) {
	selected := make([]compiledPreset, 0, len(names))
	filters := make(map[string]CompiledFilter, len(names))

	m.mu.RLock()
	for _, name := range names {
		p, ok := m.presets[presetKey(name)]
		if !ok {
			m.mu.RUnlock()
			return nil, fmt.Errorf("preset '%s' not found", name)
		}
		if _, seen := filters[p.Name]; seen {
			continue
		}
		selected = append(selected, p)
		filters[p.Name] = p.filter
	}
	m.mu.RUnlock()

	matches, err := m.evaluator.EvaluateBatch(ctx, filters, movies)
	if err != nil {
		return nil, err
	}

	results := make([]PresetResult, 0, len(selected))
	for _, p := range selected {
		results = append(results, PresetResult{Preset: p.Preset, Matches: matches[p.Name]})
	}
	return results, nil
}

// Match returns the sorted names of the presets a single movie matches
func (m *Manager) Match(movie tmdb.Movie) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, p := range m.presets {
		if p.filter.Evaluate(movie) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
