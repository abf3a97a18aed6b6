package ports

import (
	"io"

	"statplug/domain/dist"
)

// DistStore persists distribution handles to and from a textual record.
// Save then Load reproduces the handle's kind and parameter values exactly.
type DistStore interface {
	Save(h dist.Handle, w io.Writer) error
	Load(r io.Reader) (dist.Handle, error)
}
