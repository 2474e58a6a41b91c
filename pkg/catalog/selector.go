package catalog

import (
	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// SelectorKind discriminates how the download collaborator should pick weight
// files within a model's repository.
type SelectorKind int

const (
	// SelectorFile means Value is the exact weight file name.
	SelectorFile SelectorKind = iota
	// SelectorPattern means Value is a file-name substring to match among
	// candidate files.
	SelectorPattern
	// SelectorRepo means the whole repository named by Value is fetched.
	SelectorRepo
)

// String returns the string representation of a SelectorKind.
func (k SelectorKind) String() string {
	switch k {
	case SelectorFile:
		return "file"
	case SelectorPattern:
		return "pattern"
	case SelectorRepo:
		return "repo"
	}
	return "unknown"
}

// WeightSelector is the normalized answer to "which file(s) do I fetch". The
// downloader branches on Kind instead of probing which metadata fields happen
// to be present.
type WeightSelector struct {
	Kind  SelectorKind
	Value string
}

// WeightSelector resolves which of the entry's fields is authoritative for
// selecting weights. For gguf entries it fails with a ConflictingSelectorError
// when both or neither of the exact file name and the pattern are set; the
// mlx backends always fetch a whole repository.
func (m *Model) WeightSelector() (WeightSelector, error) {
	switch spec := m.Spec.(type) {
	case *GGUFSpec:
		switch {
		case spec.File != "" && spec.Pattern != "":
			return WeightSelector{}, &errors.ConflictingSelectorError{Model: m.Name, Both: true}
		case spec.File != "":
			return WeightSelector{Kind: SelectorFile, Value: spec.File}, nil
		case spec.Pattern != "":
			return WeightSelector{Kind: SelectorPattern, Value: spec.Pattern}, nil
		default:
			return WeightSelector{}, &errors.ConflictingSelectorError{Model: m.Name}
		}
	case *MLXLMSpec:
		if spec.HFRepo == "" {
			return WeightSelector{}, &errors.MissingFieldError{Model: m.Name, Field: "hf-repo"}
		}
		return WeightSelector{Kind: SelectorRepo, Value: spec.HFRepo}, nil
	case *MLXFluxSpec:
		if spec.Repo == "" {
			return WeightSelector{}, &errors.MissingFieldError{Model: m.Name, Field: "repo"}
		}
		return WeightSelector{Kind: SelectorRepo, Value: spec.Repo}, nil
	default:
		return WeightSelector{}, &errors.ValidationError{
			Model:   m.Name,
			Field:   "backend",
			Message: "entry has no backend spec",
		}
	}
}
