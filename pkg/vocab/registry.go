package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry holds the vocabularies of one or more API clients and applies
// alias overlays. Alias tables are deliberately open-ended: upstream APIs keep
// producing spellings the built-in tables don't model yet, and an overlay file
// adds them without touching normalization code.
type Registry struct {
	mu     sync.RWMutex
	vocabs map[string]*Vocabulary
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{vocabs: make(map[string]*Vocabulary)}
}

// Add registers vocabularies under their names. Re-adding a name replaces it.
func (r *Registry) Add(vocabs ...*Vocabulary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range vocabs {
		r.vocabs[v.Name()] = v
	}
}

// Get returns the vocabulary registered under name.
func (r *Registry) Get(name string) (*Vocabulary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vocabs[name]
	return v, ok
}

// overlay is the on-disk schema of one alias overlay file.
type overlay struct {
	Vocabulary string            `yaml:"vocabulary"`
	Aliases    map[string]string `yaml:"aliases"`
}

// LoadOverlays reads every *.yaml or *.yml file in dir and merges its aliases
// into the named vocabulary. Files naming an unregistered vocabulary are an
// error, as are aliases that conflict with existing entries.
func (r *Registry) LoadOverlays(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read overlay dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := r.loadOverlay(path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) loadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overlay %s: %w", path, err)
	}
	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse overlay %s: %w", path, err)
	}
	if o.Vocabulary == "" {
		return fmt.Errorf("overlay %s: missing vocabulary name", path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vocabs[o.Vocabulary]
	if !ok {
		return fmt.Errorf("overlay %s: unknown vocabulary %q", path, o.Vocabulary)
	}
	for raw, tok := range o.Aliases {
		if err := v.AddAlias(raw, tok); err != nil {
			return fmt.Errorf("overlay %s: %w", path, err)
		}
	}
	return nil
}

// Info is the public metadata for one registered vocabulary.
type Info struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
	Aliases int    `json:"aliases"`
}

// List returns metadata for all registered vocabularies, sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.vocabs))
	for _, v := range r.vocabs {
		infos = append(infos, Info{Name: v.Name(), Members: v.Len(), Aliases: v.AliasCount()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Count returns the number of registered vocabularies.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vocabs)
}
