package catalog

import (
	"github.com/goccy/go-yaml"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// modelYAML is the flat wire form of a catalog entry. The persisted shape
// keeps the original field names (model, hf-repo, base_model) so existing
// catalog files stay readable by hand and by the download collaborator.
type modelYAML struct {
	Name         string  `yaml:"name"`
	Task         Task    `yaml:"task"`
	Backend      Backend `yaml:"backend"`
	Repo         string  `yaml:"repo,omitempty"`
	HFRepo       string  `yaml:"hf-repo,omitempty"`
	File         string  `yaml:"model,omitempty"`
	Pattern      string  `yaml:"pattern,omitempty"`
	Projector    string  `yaml:"projector,omitempty"`
	Architecture string  `yaml:"architecture,omitempty"`
	LoRA         bool    `yaml:"lora,omitempty"`
	BaseModel    string  `yaml:"base_model,omitempty"`
}

// UnmarshalYAML decodes a flat entry and dispatches the backend-specific
// fields into the matching Spec variant.
func (m *Model) UnmarshalYAML(data []byte) error {
	var aux modelYAML
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.Name = aux.Name
	m.Task = aux.Task
	m.Backend = aux.Backend
	m.LoRA = aux.LoRA
	m.BaseModel = aux.BaseModel

	switch aux.Backend {
	case BackendGGUF:
		m.Spec = &GGUFSpec{
			Repo:      aux.Repo,
			File:      aux.File,
			Pattern:   aux.Pattern,
			Projector: aux.Projector,
		}
	case BackendMLXLM:
		m.Spec = &MLXLMSpec{
			HFRepo: aux.HFRepo,
		}
	case BackendMLXFlux:
		m.Spec = &MLXFluxSpec{
			Repo:         aux.Repo,
			Architecture: aux.Architecture,
		}
	default:
		return &errors.ValidationError{
			Model:   aux.Name,
			Field:   "backend",
			Message: "unknown backend " + string(aux.Backend),
		}
	}

	return nil
}

// MarshalYAML encodes the entry back into its flat wire form.
func (m Model) MarshalYAML() ([]byte, error) {
	aux := modelYAML{
		Name:      m.Name,
		Task:      m.Task,
		Backend:   m.Backend,
		LoRA:      m.LoRA,
		BaseModel: m.BaseModel,
	}

	switch spec := m.Spec.(type) {
	case *GGUFSpec:
		aux.Repo = spec.Repo
		aux.File = spec.File
		aux.Pattern = spec.Pattern
		aux.Projector = spec.Projector
	case *MLXLMSpec:
		aux.HFRepo = spec.HFRepo
	case *MLXFluxSpec:
		aux.Repo = spec.Repo
		aux.Architecture = spec.Architecture
	}

	return yaml.Marshal(aux)
}
