package catalog

// Task identifies what a model is served for.
type Task string

// Tasks supported by the catalog.
const (
	TaskChat            Task = "chat"
	TaskEmbed           Task = "embed"
	TaskImageGeneration Task = "image-generation"
)

// String returns the string representation of a Task.
func (t Task) String() string {
	return string(t)
}

// Known reports whether the task is one the serving runtime understands.
func (t Task) Known() bool {
	switch t {
	case TaskChat, TaskEmbed, TaskImageGeneration:
		return true
	}
	return false
}

// Backend identifies the runtime engine required to execute a model's
// weight format.
type Backend string

// Backends supported by the catalog.
const (
	BackendGGUF    Backend = "gguf"
	BackendMLXLM   Backend = "mlx-lm"
	BackendMLXFlux Backend = "mlx-flux"
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	return string(b)
}

// Known reports whether the backend is one the serving runtime understands.
func (b Backend) Known() bool {
	switch b {
	case BackendGGUF, BackendMLXLM, BackendMLXFlux:
		return true
	}
	return false
}

// Model is a single catalog entry: the provisioning metadata needed to locate
// and load one model. The backend-specific fields live in Spec, a variant
// selected by the Backend discriminator, so each backend carries only its
// legal fields.
type Model struct {
	// Name is the canonical model identifier and the catalog's primary key.
	Name string

	// Task the model serves.
	Task Task

	// Backend required to run the model. Discriminates the Spec variant.
	Backend Backend

	// LoRA marks this entry as a low-rank adapter rather than a standalone model.
	LoRA bool

	// BaseModel names the standalone entry this adapter applies to.
	// Required when LoRA is true.
	BaseModel string

	// Spec holds the backend-specific provisioning fields.
	Spec BackendSpec
}

// BackendSpec is the per-backend variant of a catalog entry.
type BackendSpec interface {
	// Backend returns the discriminator this variant belongs to.
	Backend() Backend
}

// GGUFSpec holds provisioning metadata for llama.cpp style gguf weights.
// Exactly one of File or Pattern selects the weight file within Repo.
type GGUFSpec struct {
	// Repo is the remote repository holding the weights.
	Repo string `yaml:"repo"`

	// File is the exact weight file name, when known.
	File string `yaml:"model,omitempty"`

	// Pattern is a file-name substring used to select among candidate
	// files when an exact name is not given.
	Pattern string `yaml:"pattern,omitempty"`

	// Projector is the optional multimodal vision projector file.
	Projector string `yaml:"projector,omitempty"`
}

// Backend returns BackendGGUF.
func (s *GGUFSpec) Backend() Backend { return BackendGGUF }

// MLXLMSpec holds provisioning metadata for mlx-lm served models, which are
// pulled as a whole Hugging Face repository.
type MLXLMSpec struct {
	// HFRepo is the Hugging Face repository holding the weights.
	HFRepo string `yaml:"hf-repo"`
}

// Backend returns BackendMLXLM.
func (s *MLXLMSpec) Backend() Backend { return BackendMLXLM }

// MLXFluxSpec holds provisioning metadata for mlx-flux image generation
// models and their LoRA adapters.
type MLXFluxSpec struct {
	// Repo is the remote repository holding the weights.
	Repo string `yaml:"repo"`

	// Architecture names the model family variant (e.g. flux-dev vs
	// flux-schnell) used to select the execution graph.
	Architecture string `yaml:"architecture"`
}

// Backend returns BackendMLXFlux.
func (s *MLXFluxSpec) Backend() Backend { return BackendMLXFlux }

// IsLoRA reports whether the entry is a LoRA adapter.
func (m *Model) IsLoRA() bool {
	return m.LoRA
}

// Architecture returns the execution architecture for image generation
// entries, or "" for backends that do not carry one.
func (m *Model) Architecture() string {
	if spec, ok := m.Spec.(*MLXFluxSpec); ok {
		return spec.Architecture
	}
	return ""
}
