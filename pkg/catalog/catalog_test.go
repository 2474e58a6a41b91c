package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

func TestNewEmbedded(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)
	require.NotNil(t, cat)

	assert.NotZero(t, cat.Len())
	assert.NotZero(t, cat.Identity().Len())

	// Some catalog entries predate their published hash, so the catalog is
	// at least as large as the identity table.
	assert.GreaterOrEqual(t, cat.Len(), cat.Identity().Len())
}

func TestModelLookup(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	m, err := cat.Model("qwen3-embedding-0.6b")
	require.NoError(t, err)
	assert.Equal(t, TaskEmbed, m.Task)
	assert.Equal(t, BackendGGUF, m.Backend)

	spec, ok := m.Spec.(*GGUFSpec)
	require.True(t, ok, "expected gguf spec, got %T", m.Spec)
	assert.Equal(t, "Qwen/Qwen3-Embedding-0.6B-GGUF", spec.Repo)
	assert.Equal(t, "Qwen3-Embedding-0.6B-Q8_0.gguf", spec.File)
	assert.Empty(t, spec.Pattern)
}

func TestModelLookupUnknown(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	m, err := cat.Model("no-such-model")
	assert.Nil(t, m)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var unknown *errors.UnknownModelError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no-such-model", unknown.Name)
}

func TestNamesStableNumericOrder(t *testing.T) {
	cat := NewEmpty()
	for _, name := range []string{"qwen3-32b", "qwen3-4b", "qwen3-14b", "qwen3-8b"} {
		require.NoError(t, cat.Add(&Model{
			Name:    name,
			Task:    TaskChat,
			Backend: BackendGGUF,
			Spec:    &GGUFSpec{Repo: "Qwen/" + name, File: name + ".gguf"},
		}))
	}

	assert.Equal(t, []string{"qwen3-4b", "qwen3-8b", "qwen3-14b", "qwen3-32b"}, cat.Names())
}

func TestModelsMatchesNamesOrder(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	names := cat.Names()
	models := cat.Models()
	require.Len(t, models, len(names))
	for i, m := range models {
		assert.Equal(t, names[i], m.Name)
	}
}

func TestAddRejectsDuplicatesAndNil(t *testing.T) {
	cat := NewEmpty()

	m := &Model{Name: "dup", Task: TaskChat, Backend: BackendGGUF, Spec: &GGUFSpec{Repo: "r", File: "f"}}
	require.NoError(t, cat.Add(m))

	err := cat.Add(m)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	assert.Error(t, cat.Add(nil))
	assert.Error(t, cat.Add(&Model{}))
}

func TestBaseOf(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	lora, err := cat.Model("flux-dev-nsfw")
	require.NoError(t, err)
	require.True(t, lora.IsLoRA())
	assert.Equal(t, "flux-dev", lora.BaseModel)

	base, err := cat.BaseOf(lora)
	require.NoError(t, err)
	assert.Equal(t, "flux-dev", base.Name)
	assert.False(t, base.IsLoRA())
}

func TestBaseOfDangling(t *testing.T) {
	cat := NewEmpty()
	lora := &Model{
		Name:      "orphan-adapter",
		Task:      TaskImageGeneration,
		Backend:   BackendMLXFlux,
		LoRA:      true,
		BaseModel: "missing-base",
		Spec:      &MLXFluxSpec{Repo: "r", Architecture: "flux-dev"},
	}
	require.NoError(t, cat.Add(lora))

	base, err := cat.BaseOf(lora)
	assert.Nil(t, base)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var dangling *errors.DanglingBaseModelError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "missing-base", dangling.BaseModel)
}

func TestBaseOfNonLoRA(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	standalone, err := cat.Model("flux-dev")
	require.NoError(t, err)

	_, err = cat.BaseOf(standalone)
	assert.Error(t, err)
}

func TestConcurrentReads(t *testing.T) {
	cat, err := NewEmbedded()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := cat.Model("qwen3-8b"); err != nil {
					t.Error(err)
					return
				}
				if _, err := cat.Identity().ResolveName("qwen3-8b"); err != nil {
					t.Error(err)
					return
				}
				_ = cat.Names()
			}
		}()
	}
	wg.Wait()
}

func TestNewFromPathMissingDirectory(t *testing.T) {
	_, err := NewFromPath(t.TempDir())
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
