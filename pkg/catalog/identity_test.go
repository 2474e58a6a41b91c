package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

func TestNewIdentityDerivesReverseMap(t *testing.T) {
	id, err := NewIdentity([]HashEntry{
		{Hash: "bafkreia", Model: "model-a"},
		{Hash: "bafkreib", Model: "model-b"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, id.Len())

	name, err := id.ResolveHash("bafkreia")
	require.NoError(t, err)
	assert.Equal(t, "model-a", name)

	hash, err := id.ResolveName("model-a")
	require.NoError(t, err)
	assert.Equal(t, "bafkreia", hash)
}

func TestNewIdentityRejectsDuplicateHash(t *testing.T) {
	_, err := NewIdentity([]HashEntry{
		{Hash: "bafkreia", Model: "model-a"},
		{Hash: "bafkreia", Model: "model-b"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicate(err))

	var dup *errors.DuplicateHashError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "bafkreia", dup.Hash)
}

func TestNewIdentityRejectsDuplicateModelName(t *testing.T) {
	// The classic hand-editing mistake: the same name listed under two hashes.
	_, err := NewIdentity([]HashEntry{
		{Hash: "bafkreia", Model: "model-a"},
		{Hash: "bafkreib", Model: "model-a"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsDuplicate(err))

	var dup *errors.DuplicateModelNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "model-a", dup.Name)
	assert.Equal(t, "bafkreia", dup.PriorHash)
	assert.Equal(t, "bafkreib", dup.Hash)
}

func TestResolveUnknownHash(t *testing.T) {
	id := NewEmptyIdentity()

	name, err := id.ResolveHash("bafkreimissing")
	assert.Empty(t, name)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var unknown *errors.UnknownHashError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bafkreimissing", unknown.Hash)
}

func TestResolveNameWithoutPublishedHash(t *testing.T) {
	id, err := NewIdentity([]HashEntry{{Hash: "bafkreia", Model: "model-a"}})
	require.NoError(t, err)

	hash, err := id.ResolveName("unreleased-model")
	assert.Empty(t, hash)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var noHash *errors.NoHashError
	require.ErrorAs(t, err, &noHash)
	assert.Equal(t, "unreleased-model", noHash.Name)
}

func TestEntriesOrderedByModelName(t *testing.T) {
	id, err := NewIdentity([]HashEntry{
		{Hash: "bafkreic", Model: "zeta"},
		{Hash: "bafkreia", Model: "alpha"},
		{Hash: "bafkreib", Model: "mid"},
	})
	require.NoError(t, err)

	entries := id.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Model)
	assert.Equal(t, "mid", entries[1].Model)
	assert.Equal(t, "zeta", entries[2].Model)
}

func TestShippedTableBijection(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	id := cat.Identity()
	require.NotZero(t, id.Len())

	seen := make(map[string]string, id.Len())
	for _, entry := range id.Entries() {
		// Forward and reverse lookups round-trip for every published hash.
		name, err := id.ResolveHash(entry.Hash)
		require.NoError(t, err)
		assert.Equal(t, entry.Model, name)

		hash, err := id.ResolveName(name)
		require.NoError(t, err)
		assert.Equal(t, entry.Hash, hash)

		// No two hashes share a name.
		if prior, dup := seen[name]; dup {
			t.Fatalf("model %q mapped by both %s and %s", name, prior, entry.Hash)
		}
		seen[name] = entry.Hash
	}
}

func TestShippedTableKnownHash(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	const hash = "bafkreiacd5mwy4a5wkdmvxsk42nsupes5uf4q3dm52k36mvbhgdrez422y"

	name, err := cat.Identity().ResolveHash(hash)
	require.NoError(t, err)
	assert.Equal(t, "qwen3-embedding-0.6b", name)

	roundTrip, err := cat.Identity().ResolveName("qwen3-embedding-0.6b")
	require.NoError(t, err)
	assert.Equal(t, hash, roundTrip)
}
