package pngme

import (
	"fmt"
	"slices"
)

// AppendChunk adds c after the last chunk. Chunk types are not checked
// against PNG ordering rules and duplicates are allowed.
func (d *Document) AppendChunk(c *Chunk) {
	d.chunks = append(d.chunks, c)
}

// RemoveChunk removes the first chunk of the given type and returns it.
// Later chunks of the same type are left in place. It returns
// ErrInvalidChunkType if chunkType is malformed and ErrNotFound if no chunk
// matches; d is unchanged in both cases.
func (d *Document) RemoveChunk(chunkType string) (*Chunk, error) {
	ct, err := ParseChunkType(chunkType)
	if err != nil {
		return nil, err
	}
	i := d.index(ct)
	if i < 0 {
		return nil, fmt.Errorf("%w: no %s chunk", ErrNotFound, ct)
	}
	c := d.chunks[i]
	d.chunks = slices.Delete(d.chunks, i, i+1)
	return c, nil
}

// ChunkByType returns the first chunk of the given type. A malformed type
// matches nothing.
func (d *Document) ChunkByType(chunkType string) (*Chunk, bool) {
	ct, err := ParseChunkType(chunkType)
	if err != nil {
		return nil, false
	}
	i := d.index(ct)
	if i < 0 {
		return nil, false
	}
	return d.chunks[i], true
}

// ChunksByType returns every chunk of the given type in document order.
func (d *Document) ChunksByType(chunkType string) []*Chunk {
	ct, err := ParseChunkType(chunkType)
	if err != nil {
		return nil
	}
	var out []*Chunk
	for _, c := range d.chunks {
		if c.typ == ct {
			out = append(out, c)
		}
	}
	return out
}

// Chunks returns the chunks in document order. The slice is a copy; the
// chunks themselves are immutable.
func (d *Document) Chunks() []*Chunk {
	return slices.Clone(d.chunks)
}

func (d *Document) index(ct ChunkType) int {
	return slices.IndexFunc(d.chunks, func(c *Chunk) bool { return c.typ == ct })
}
