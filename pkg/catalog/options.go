package catalog

import (
	"io/fs"
	"os"

	"github.com/eternalai-org/eternal-zoo/internal/embedded"
)

// Option configures a catalog at construction time.
type Option func(*config)

// config holds catalog construction options.
type config struct {
	readFS fs.FS // nil means an empty in-memory catalog
}

func defaults() *config {
	return &config{}
}

func (c *config) apply(opts ...Option) *config {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithEmbedded loads the catalog data compiled into the binary.
// This is the production configuration.
func WithEmbedded() Option {
	return func(c *config) {
		sub, err := fs.Sub(embedded.FS, "catalog")
		if err != nil {
			// The embedded tree always contains catalog/; a failure here
			// means the binary itself is broken.
			panic(err)
		}
		c.readFS = sub
	}
}

// WithFS loads catalog data from a custom filesystem implementation.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.readFS = fsys
	}
}

// WithPath loads catalog data from a directory on disk. This is useful for
// deployments where the data is edited independently of the code.
func WithPath(path string) Option {
	return WithFS(os.DirFS(path))
}
