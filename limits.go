package pngme

import "math"

// Limits bounds the work done on untrusted input. Zero fields take the
// default value. MaxMessageUncompressed is capped at math.MaxInt64.
type Limits struct {
	MaxChunkLen            uint32 // data bytes in a single chunk
	MaxChunks              int    // chunks in a document
	MaxMessageUncompressed uint64 // message bytes after decompression
}

func defaultLimits() Limits {
	return Limits{
		MaxChunkLen:            1<<31 - 1, // PNG caps chunk length at 2^31-1
		MaxChunks:              1 << 20,
		MaxMessageUncompressed: 64 << 20, // 64 MiB
	}
}

// DefaultLimits returns the limits used when none are supplied.
func DefaultLimits() Limits { return defaultLimits() }

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxChunkLen == 0 {
		l.MaxChunkLen = d.MaxChunkLen
	}
	if l.MaxChunks == 0 {
		l.MaxChunks = d.MaxChunks
	}
	if l.MaxMessageUncompressed == 0 {
		l.MaxMessageUncompressed = d.MaxMessageUncompressed
	}
	// Decompression reads through an int64-bounded io.LimitReader.
	if l.MaxMessageUncompressed > math.MaxInt64 {
		l.MaxMessageUncompressed = math.MaxInt64
	}
	return l
}
