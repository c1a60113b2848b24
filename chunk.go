package pngme

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Chunk is a single PNG chunk. A Chunk is immutable: its checksum always
// matches its type and data.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk of the given type around a copy of data and
// computes its CRC.
func NewChunk(ct ChunkType, data []byte) *Chunk {
	d := bytes.Clone(data)
	if d == nil {
		d = []byte{}
	}
	return &Chunk{typ: ct, data: d, crc: checksum(ct.b, d)}
}

// ParseChunk decodes the chunk at the start of b. Bytes after the chunk's
// CRC are ignored.
//
// ParseChunk returns ErrTruncated if b ends before the chunk does, a
// *CRCError (matching ErrCRCMismatch) if the stored CRC is wrong, and
// ErrInvalidChunkType if the checksummed type code is not four ASCII letters.
func ParseChunk(b []byte) (*Chunk, error) {
	c, _, err := parseChunk(b, defaultLimits())
	return c, err
}

func parseChunk(b []byte, limits Limits) (*Chunk, int, error) {
	r, n, err := readRecord(b, limits)
	if err != nil {
		return nil, 0, err
	}
	if computed := checksum(r.Type, r.Data); computed != r.CRC {
		return nil, 0, &CRCError{Type: string(r.Type[:]), Stored: r.CRC, Computed: computed}
	}
	ct, err := NewChunkType(r.Type)
	if err != nil {
		return nil, 0, err
	}
	return &Chunk{typ: ct, data: bytes.Clone(r.Data), crc: r.CRC}, n, nil
}

// Length returns the number of data bytes.
func (c *Chunk) Length() uint32 { return uint32(len(c.data)) }

func (c *Chunk) Type() ChunkType { return c.typ }

// Data returns a copy of the chunk's data.
func (c *Chunk) Data() []byte { return bytes.Clone(c.data) }

func (c *Chunk) CRC() uint32 { return c.crc }

// DataString returns the data as a string, or ErrEncoding if it is not
// valid UTF-8.
func (c *Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrEncoding, c.typ)
	}
	return string(c.data), nil
}

// Bytes returns the wire form of the chunk: length, type, data and CRC,
// with integers in big-endian order.
func (c *Chunk) Bytes() []byte {
	return appendRecord(make([]byte, 0, chunkOverhead+len(c.data)), c.typ.b, c.data, c.crc)
}

// Equal reports whether c and o have the same type and data.
func (c *Chunk) Equal(o *Chunk) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.typ == o.typ && c.crc == o.crc && bytes.Equal(c.data, o.data)
}

func (c *Chunk) String() string {
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	fmt.Fprintf(&sb, "  Length: %d\n", c.Length())
	fmt.Fprintf(&sb, "  Type: %s\n", c.typ)
	fmt.Fprintf(&sb, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&sb, "  Crc: %d\n", c.crc)
	sb.WriteString("}\n")
	return sb.String()
}
