// Package catalog implements the eternal-zoo model catalog: a static registry
// mapping content-address hashes to canonical model names, and canonical
// names to the provisioning metadata needed to locate and load each model.
//
// The catalog follows a single-phase load-and-validate lifecycle. It is built
// once during process initialization, validated as a whole, and read-only
// afterwards; every lookup is a pure in-memory map access safe for concurrent
// use. Downloading weights, verifying bytes against a hash, and running
// inference are the job of external collaborators.
//
// Example usage:
//
//	cat, err := catalog.NewEmbedded()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if violations := cat.Validate(); len(violations) > 0 {
//	    log.Fatal(violations)
//	}
//	name, err := cat.Identity().ResolveHash(hash)
package catalog

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// Catalog holds the model registry and its identity table. The zero value is
// not usable; construct one with New, NewEmbedded, NewFromPath, or NewEmpty.
type Catalog struct {
	options *config

	mu       sync.RWMutex
	models   map[string]*Model
	identity *Identity
}

// New creates a catalog with the given options and, when a data source is
// configured, loads it. Construction fails fast on corrupt identity tables
// (duplicate hashes or names) and on undecodable entries.
func New(opts ...Option) (*Catalog, error) {
	cat := &Catalog{
		options:  defaults().apply(opts...),
		models:   make(map[string]*Model),
		identity: NewEmptyIdentity(),
	}

	if cat.options.readFS != nil {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// NewEmbedded creates a catalog backed by the data compiled into the binary.
// This is the recommended constructor for production use.
func NewEmbedded() (*Catalog, error) {
	return New(WithEmbedded())
}

// NewFromPath creates a catalog backed by files on disk, for deployments
// where catalog data is edited without recompiling.
func NewFromPath(path string) (*Catalog, error) {
	return New(WithPath(path))
}

// NewEmpty creates an in-memory empty catalog. Useful for tests that
// assemble alternate catalogs without touching shared state.
func NewEmpty() *Catalog {
	return &Catalog{
		options:  defaults(),
		models:   make(map[string]*Model),
		identity: NewEmptyIdentity(),
	}
}

// Identity returns the hash/name identity table.
func (c *Catalog) Identity() *Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

// Model returns the entry for a canonical model name. It fails with an
// UnknownModelError if the name has no entry and never returns a zero record
// silently.
func (c *Catalog) Model(name string) (*Model, error) {
	c.mu.RLock()
	model, ok := c.models[name]
	c.mu.RUnlock()
	if !ok {
		return nil, &errors.UnknownModelError{Name: name}
	}
	return model, nil
}

// Has reports whether a canonical model name has an entry.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	_, ok := c.models[name]
	c.mu.RUnlock()
	return ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	length := len(c.models)
	c.mu.RUnlock()
	return length
}

// Models returns all entries ordered by canonical name.
func (c *Catalog) Models() []*Model {
	names := c.Names()

	c.mu.RLock()
	defer c.mu.RUnlock()
	models := make([]*Model, 0, len(names))
	for _, name := range names {
		models = append(models, c.models[name])
	}
	return models
}

// Names returns all canonical model names in a stable, human-friendly order:
// collated with numeric awareness so qwen3-8b sorts before qwen3-14b.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	c.mu.RUnlock()

	collate.New(language.English, collate.Numeric).SortStrings(names)
	return names
}

// ForEach applies fn to each entry. The function must not modify the model.
// If fn returns false, iteration stops early.
func (c *Catalog) ForEach(fn func(name string, m *Model) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for name, model := range c.models {
		if !fn(name, model) {
			break
		}
	}
}

// Add registers an entry, failing with ErrAlreadyExists if the name is taken.
// Adding is a construction-time operation; once the owning process finishes
// loading, the catalog is treated as immutable.
func (c *Catalog) Add(m *Model) error {
	if m == nil {
		return &errors.ValidationError{Message: "model cannot be nil"}
	}
	if m.Name == "" {
		return &errors.ValidationError{Field: "name", Message: "model name cannot be empty"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.models[m.Name]; exists {
		return fmt.Errorf("model %q: %w", m.Name, errors.ErrAlreadyExists)
	}
	c.models[m.Name] = m
	return nil
}

// SetIdentity replaces the identity table. Construction-time only, like Add.
func (c *Catalog) SetIdentity(id *Identity) {
	if id == nil {
		id = NewEmptyIdentity()
	}
	c.mu.Lock()
	c.identity = id
	c.mu.Unlock()
}

// BaseOf returns the standalone entry a LoRA adapter applies to. It fails
// with a DanglingBaseModelError when the reference does not resolve. That
// should never happen after Validate, but catalog data can be edited
// independently of code in some deployments, so the lookup stays defensive.
func (c *Catalog) BaseOf(m *Model) (*Model, error) {
	if !m.IsLoRA() || m.BaseModel == "" {
		return nil, &errors.DanglingBaseModelError{
			Model:  m.Name,
			Reason: "entry is not a LoRA adapter with a base model",
		}
	}

	base, err := c.Model(m.BaseModel)
	if err != nil {
		return nil, &errors.DanglingBaseModelError{Model: m.Name, BaseModel: m.BaseModel}
	}
	if base.IsLoRA() {
		return nil, &errors.DanglingBaseModelError{
			Model:     m.Name,
			BaseModel: m.BaseModel,
			Reason:    "base model is itself a LoRA adapter",
		}
	}
	return base, nil
}
