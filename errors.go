package pngme

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChunkType  = errors.New("pngme: invalid chunk type")
	ErrTruncated         = errors.New("pngme: truncated input")
	ErrCRCMismatch       = errors.New("pngme: CRC mismatch")
	ErrSignatureMismatch = errors.New("pngme: not a PNG signature")
	ErrNotFound          = errors.New("pngme: chunk not found")
	ErrEncoding          = errors.New("pngme: chunk data is not valid UTF-8")
	ErrLimitExceeded     = errors.New("pngme: limit exceeded")
	ErrInvalidPayload    = errors.New("pngme: invalid message payload")
)

// CRCError reports a chunk whose stored checksum disagrees with the one
// computed over its type and data. It matches ErrCRCMismatch with errors.Is.
type CRCError struct {
	Type     string
	Stored   uint32
	Computed uint32
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("%v: %q chunk stores %#08x, computed %#08x", ErrCRCMismatch, e.Type, e.Stored, e.Computed)
}

func (e *CRCError) Unwrap() error { return ErrCRCMismatch }
