package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

func TestWeightSelectorExactFile(t *testing.T) {
	m := &Model{
		Name:    "qwen3-8b",
		Task:    TaskChat,
		Backend: BackendGGUF,
		Spec:    &GGUFSpec{Repo: "Qwen/Qwen3-8B-GGUF", File: "Qwen3-8B-Q8_0.gguf"},
	}

	sel, err := m.WeightSelector()
	require.NoError(t, err)
	assert.Equal(t, SelectorFile, sel.Kind)
	assert.Equal(t, "Qwen3-8B-Q8_0.gguf", sel.Value)
}

func TestWeightSelectorPattern(t *testing.T) {
	m := &Model{
		Name:    "qwen3-235b-a22b",
		Task:    TaskChat,
		Backend: BackendGGUF,
		Spec:    &GGUFSpec{Repo: "unsloth/Qwen3-235B-A22B-Instruct-2507-GGUF", Pattern: "Q4_K_M"},
	}

	sel, err := m.WeightSelector()
	require.NoError(t, err)
	assert.Equal(t, SelectorPattern, sel.Kind)
	assert.Equal(t, "Q4_K_M", sel.Value)
}

func TestWeightSelectorRepoBackends(t *testing.T) {
	mlx := &Model{
		Name:    "gpt-oss-20b-mlx",
		Task:    TaskChat,
		Backend: BackendMLXLM,
		Spec:    &MLXLMSpec{HFRepo: "lmstudio-community/gpt-oss-20b-GGUF"},
	}
	sel, err := mlx.WeightSelector()
	require.NoError(t, err)
	assert.Equal(t, SelectorRepo, sel.Kind)
	assert.Equal(t, "lmstudio-community/gpt-oss-20b-GGUF", sel.Value)

	flux := &Model{
		Name:    "flux-dev",
		Task:    TaskImageGeneration,
		Backend: BackendMLXFlux,
		Spec:    &MLXFluxSpec{Repo: "NikolaSigmoid/FLUX.1-dev", Architecture: "flux-dev"},
	}
	sel, err = flux.WeightSelector()
	require.NoError(t, err)
	assert.Equal(t, SelectorRepo, sel.Kind)
	assert.Equal(t, "NikolaSigmoid/FLUX.1-dev", sel.Value)
}

func TestWeightSelectorConflicts(t *testing.T) {
	both := &Model{
		Name:    "both",
		Task:    TaskChat,
		Backend: BackendGGUF,
		Spec:    &GGUFSpec{Repo: "org/repo", File: "a.gguf", Pattern: "Q4"},
	}
	_, err := both.WeightSelector()
	require.Error(t, err)
	var conflict *errors.ConflictingSelectorError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.Both)

	neither := &Model{
		Name:    "neither",
		Task:    TaskChat,
		Backend: BackendGGUF,
		Spec:    &GGUFSpec{Repo: "org/repo"},
	}
	_, err = neither.WeightSelector()
	require.Error(t, err)
	require.ErrorAs(t, err, &conflict)
	assert.False(t, conflict.Both)
}

func TestWeightSelectorMissingSpec(t *testing.T) {
	m := &Model{Name: "specless", Task: TaskChat, Backend: BackendGGUF}
	_, err := m.WeightSelector()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidData(err))
}

func TestSelectorKindString(t *testing.T) {
	assert.Equal(t, "file", SelectorFile.String())
	assert.Equal(t, "pattern", SelectorPattern.String())
	assert.Equal(t, "repo", SelectorRepo.String())
}

// The shipped data resolves a selector for every entry; the downloader never
// has to probe field presence itself.
func TestShippedCatalogSelectors(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	for _, m := range cat.Models() {
		sel, err := m.WeightSelector()
		require.NoError(t, err, "model %q", m.Name)
		assert.NotEmpty(t, sel.Value, "model %q", m.Name)
	}
}
