package catalog

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
	"github.com/eternalai-org/eternal-zoo/pkg/logging"
)

// Data file names within the catalog filesystem.
const (
	modelsFile = "models.yaml"
	hashesFile = "hashes.yaml"
)

// Load reads the catalog data from the configured filesystem. Errors here
// are fatal for the owning process: a catalog that cannot be decoded or whose
// identity table breaks the hash/name bijection must never be partially
// trusted.
func (c *Catalog) Load() error {
	if c.options.readFS == nil {
		return nil // memory catalog, nothing to load
	}

	if err := c.loadModels(); err != nil {
		return err
	}
	if err := c.loadHashes(); err != nil {
		return err
	}

	logging.Debug().
		Int("models", c.Len()).
		Int("hashes", c.Identity().Len()).
		Msg("catalog loaded")

	return nil
}

// loadModels loads catalog entries from models.yaml.
func (c *Catalog) loadModels() error {
	data, err := fs.ReadFile(c.options.readFS, modelsFile)
	if err != nil {
		return errors.WrapIO("read", modelsFile, err)
	}

	var models []*Model
	if err := yaml.Unmarshal(data, &models); err != nil {
		return errors.WrapParse("yaml", modelsFile, err)
	}

	for _, m := range models {
		if err := c.Add(m); err != nil {
			return err
		}
	}
	return nil
}

// loadHashes loads the identity table from hashes.yaml. The file is a list of
// hash/model pairs rather than a mapping so that a duplicated hash is visible
// to the bijection check instead of being collapsed by map-key semantics.
func (c *Catalog) loadHashes() error {
	data, err := fs.ReadFile(c.options.readFS, hashesFile)
	if err != nil {
		return errors.WrapIO("read", hashesFile, err)
	}

	var entries []HashEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return errors.WrapParse("yaml", hashesFile, err)
	}

	identity, err := NewIdentity(entries)
	if err != nil {
		return err
	}
	c.SetIdentity(identity)
	return nil
}
