package catalog

import (
	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// Violation is one integrity failure found while validating the catalog.
type Violation struct {
	// Model is the canonical name of the offending entry, or "" for
	// cross-table violations such as a hash with no catalog entry.
	Model string

	// Err is the typed error describing the failure.
	Err error
}

// String returns a printable form of the violation.
func (v Violation) String() string {
	return v.Err.Error()
}

// Validate walks every entry and checks the per-backend required-field rules,
// LoRA base-model resolvability, and hash coverage. It returns the complete
// list of violations rather than stopping at the first, so catalog authors
// can fix several problems per run. The owning process calls this once at
// load time and must treat a non-empty result as fatal.
func (c *Catalog) Validate() []Violation {
	var violations []Violation

	c.ForEach(func(name string, m *Model) bool {
		violations = append(violations, c.validateModel(m)...)
		return true
	})

	// Every published hash must resolve to a name present in the catalog.
	// The converse does not hold: entries may exist before their hash is
	// published.
	for _, entry := range c.Identity().Entries() {
		if !c.Has(entry.Model) {
			violations = append(violations, Violation{
				Model: entry.Model,
				Err:   &errors.UnknownModelError{Name: entry.Model},
			})
		}
	}

	return violations
}

// validateModel checks a single entry against its backend's schema.
func (c *Catalog) validateModel(m *Model) []Violation {
	var violations []Violation
	fail := func(err error) {
		violations = append(violations, Violation{Model: m.Name, Err: err})
	}

	if !m.Task.Known() {
		fail(&errors.ValidationError{Model: m.Name, Field: "task", Message: "unknown task " + string(m.Task)})
	}

	switch spec := m.Spec.(type) {
	case *GGUFSpec:
		if spec.Repo == "" {
			fail(&errors.MissingFieldError{Model: m.Name, Field: "repo"})
		}
		if m.Task != TaskChat && m.Task != TaskEmbed {
			fail(&errors.ValidationError{
				Model:   m.Name,
				Field:   "task",
				Message: "gguf entries serve chat or embed, not " + string(m.Task),
			})
		}
		if _, err := m.WeightSelector(); err != nil {
			fail(err)
		}

	case *MLXLMSpec:
		if spec.HFRepo == "" {
			fail(&errors.MissingFieldError{Model: m.Name, Field: "hf-repo"})
		}

	case *MLXFluxSpec:
		if spec.Repo == "" {
			fail(&errors.MissingFieldError{Model: m.Name, Field: "repo"})
		}
		if spec.Architecture == "" {
			fail(&errors.MissingFieldError{Model: m.Name, Field: "architecture"})
		}
		if m.Task != TaskImageGeneration {
			fail(&errors.ValidationError{
				Model:   m.Name,
				Field:   "task",
				Message: "mlx-flux entries serve image-generation, not " + string(m.Task),
			})
		}

	default:
		fail(&errors.ValidationError{Model: m.Name, Field: "backend", Message: "entry has no backend spec"})
	}

	if m.IsLoRA() {
		violations = append(violations, c.validateLoRA(m)...)
	}

	return violations
}

// validateLoRA checks that an adapter's base model reference resolves to an
// existing, non-LoRA entry with a matching architecture.
func (c *Catalog) validateLoRA(m *Model) []Violation {
	if m.BaseModel == "" {
		return []Violation{{Model: m.Name, Err: &errors.MissingFieldError{Model: m.Name, Field: "base_model"}}}
	}

	base, err := c.Model(m.BaseModel)
	if err != nil {
		return []Violation{{Model: m.Name, Err: &errors.DanglingBaseModelError{Model: m.Name, BaseModel: m.BaseModel}}}
	}

	var violations []Violation
	if base.IsLoRA() {
		// Adapters chain onto standalone models only.
		violations = append(violations, Violation{Model: m.Name, Err: &errors.DanglingBaseModelError{
			Model:     m.Name,
			BaseModel: m.BaseModel,
			Reason:    "base model is itself a LoRA adapter",
		}})
	}

	// Consistency, not structure: an adapter trained against one execution
	// architecture will not apply cleanly to another.
	if arch, baseArch := m.Architecture(), base.Architecture(); arch != "" && baseArch != "" && arch != baseArch {
		violations = append(violations, Violation{Model: m.Name, Err: &errors.ValidationError{
			Model:   m.Name,
			Field:   "architecture",
			Message: "adapter architecture " + arch + " does not match base model architecture " + baseArch,
		}})
	}

	return violations
}
