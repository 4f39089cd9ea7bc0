package object

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/saworbit/kado/internal/digest"
	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/pkg/ident"
	"github.com/saworbit/kado/pkg/kadoerr"
)

// Chunk is an immutable piece of an Item's data (spec.md section 4.6). Its data is
// set-once: the zero-value-avoiding constructor is the only way to populate it, and
// SetData always fails with kadoerr.ErrNotSupported. Its id is derived deterministically
// from the first UUIDLen hex characters of its strong hash, so two chunks holding the
// same bytes always share an id.
type Chunk struct {
	*dataObject
	id uuid.UUID
}

// NewChunk builds a Chunk from data using the package's default strong/weak hash
// factories, deriving its id from cfg.UUIDLen hex characters of the strong hash.
func NewChunk(data []byte, cfg *kadocfg.Config) (*Chunk, error) {
	d := newDataObject(append([]byte(nil), data...), digest.NewStrong, digest.NewWeak)
	id, err := ident.NewChunkID(d.StrongHash(), cfg.UUIDLen)
	if err != nil {
		return nil, fmt.Errorf("object: derive chunk id: %w", err)
	}
	return &Chunk{dataObject: d, id: id}, nil
}

// ID returns the chunk's deterministic, content-derived identifier.
func (c *Chunk) ID() uuid.UUID {
	return c.id
}

// SetData always fails: a Chunk's bytes cannot be replaced after construction, per
// spec.md section 4.6. It exists to satisfy HasData-shaped callers that attempt a
// write path without a type assertion.
func (c *Chunk) SetData([]byte) error {
	return fmt.Errorf("%w: chunk data cannot be reassigned", kadoerr.ErrNotSupported)
}

// EqualChunk compares two chunks' underlying data.
func (c *Chunk) EqualChunk(other *Chunk) bool {
	return c.dataObject.Equal(other.dataObject)
}
