package pngme

import (
	"bytes"
	"fmt"
	"io"
)

// Function variables for testing injection.
var readAll = io.ReadAll

// Parse decodes a complete PNG datastream held in b.
//
// Parse checks the 8-byte signature, then reads chunks until b is
// exhausted, keeping them in file order. It returns ErrSignatureMismatch if
// b does not start with Signature, ErrTruncated if the last chunk is cut
// short, ErrInvalidChunkType or ErrCRCMismatch for a corrupt chunk, and
// ErrLimitExceeded if a chunk or the chunk count exceeds the configured
// Limits. No partial document is returned on error.
//
// The returned Document does not alias b.
func Parse(b []byte, opts ...ReadOption) (*Document, error) {
	cfg := newReadConfig(opts)

	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, ErrSignatureMismatch
	}
	off := len(Signature)
	var chunks []*Chunk
	for off < len(b) {
		if len(chunks) >= cfg.limits.MaxChunks {
			return nil, fmt.Errorf("%w: more than %d chunks", ErrLimitExceeded, cfg.limits.MaxChunks)
		}
		c, n, err := parseChunk(b[off:], cfg.limits)
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(chunks), off, err)
		}
		chunks = append(chunks, c)
		off += n
	}
	return &Document{chunks: chunks}, nil
}

// Decode reads r to EOF and parses the result with Parse.
func Decode(r io.Reader, opts ...ReadOption) (*Document, error) {
	b, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(b, opts...)
}
