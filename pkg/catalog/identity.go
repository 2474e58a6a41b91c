package catalog

import (
	"sort"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// HashEntry is one row of the identity table: a published content-address
// hash and the canonical model name it identifies.
type HashEntry struct {
	Hash  string `yaml:"hash"`
	Model string `yaml:"model"`
}

// Identity maintains the bijection between content-address hashes and
// canonical model names. The reverse map is derived from the forward table at
// construction so the two can never drift apart. An Identity is immutable
// after construction and safe for unsynchronized concurrent reads.
type Identity struct {
	forward map[string]string // hash -> name
	reverse map[string]string // name -> hash
}

// NewIdentity builds an Identity from the given table, deriving the reverse
// map. It fails with a DuplicateHashError or DuplicateModelNameError if the
// table would break the bijection; a hand-maintained table can accidentally
// list the same name under two hashes, and that must abort initialization
// rather than silently overwrite.
func NewIdentity(entries []HashEntry) (*Identity, error) {
	id := &Identity{
		forward: make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		if _, seen := id.forward[e.Hash]; seen {
			return nil, &errors.DuplicateHashError{Hash: e.Hash, Name: e.Model}
		}
		if prior, seen := id.reverse[e.Model]; seen {
			return nil, &errors.DuplicateModelNameError{
				Name:      e.Model,
				Hash:      e.Hash,
				PriorHash: prior,
			}
		}
		id.forward[e.Hash] = e.Model
		id.reverse[e.Model] = e.Hash
	}

	return id, nil
}

// NewEmptyIdentity returns an Identity with no published hashes.
func NewEmptyIdentity() *Identity {
	return &Identity{
		forward: map[string]string{},
		reverse: map[string]string{},
	}
}

// ResolveHash returns the canonical model name for a content-address hash.
// It fails with an UnknownHashError for unregistered hashes and never returns
// a zero value silently.
func (id *Identity) ResolveHash(hash string) (string, error) {
	name, ok := id.forward[hash]
	if !ok {
		return "", &errors.UnknownHashError{Hash: hash}
	}
	return name, nil
}

// ResolveName returns the published hash for a canonical model name. It fails
// with a NoHashError for catalog entries with no published hash yet, which is
// legal for unreleased models.
func (id *Identity) ResolveName(name string) (string, error) {
	hash, ok := id.reverse[name]
	if !ok {
		return "", &errors.NoHashError{Name: name}
	}
	return hash, nil
}

// Has reports whether the hash is registered.
func (id *Identity) Has(hash string) bool {
	_, ok := id.forward[hash]
	return ok
}

// Len returns the number of published hashes.
func (id *Identity) Len() int {
	return len(id.forward)
}

// Entries returns a copy of the identity table ordered by model name, for the
// download collaborator and CLI display.
func (id *Identity) Entries() []HashEntry {
	entries := make([]HashEntry, 0, len(id.forward))
	for hash, name := range id.forward {
		entries = append(entries, HashEntry{Hash: hash, Model: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Model < entries[j].Model
	})
	return entries
}
