package pngme

import (
	"bytes"
	"fmt"
)

// RecordReport describes one chunk record found by Validate.
type RecordReport struct {
	Offset      int
	Length      uint32
	Type        [4]byte
	StoredCRC   uint32
	ComputedCRC uint32
}

// TypeValid reports whether the record's type code is a valid ChunkType.
func (r RecordReport) TypeValid() bool {
	ct, err := NewChunkType(r.Type)
	return err == nil && ct.IsValid()
}

func (r RecordReport) CRCValid() bool { return r.StoredCRC == r.ComputedCRC }

// Report is the result of walking a datastream with Validate.
type Report struct {
	SignatureValid bool
	Records        []RecordReport
	// Err is the framing error that stopped the walk, if any.
	Err error
}

// Valid reports whether the datastream would parse and every record has a
// valid type and CRC.
func (r *Report) Valid() bool {
	if !r.SignatureValid || r.Err != nil {
		return false
	}
	for _, rec := range r.Records {
		if !rec.TypeValid() || !rec.CRCValid() {
			return false
		}
	}
	return true
}

// Validate walks b like Parse but keeps going past bad types and checksums,
// recording what it finds. It stops at the first framing problem
// (truncation or an exceeded limit) and stores it in Report.Err.
func Validate(b []byte, opts ...ReadOption) *Report {
	cfg := newReadConfig(opts)
	rep := &Report{}
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		rep.Err = ErrSignatureMismatch
		return rep
	}
	rep.SignatureValid = true
	off := len(Signature)
	for off < len(b) {
		if len(rep.Records) >= cfg.limits.MaxChunks {
			rep.Err = fmt.Errorf("%w: more than %d chunks", ErrLimitExceeded, cfg.limits.MaxChunks)
			return rep
		}
		r, n, err := readRecord(b[off:], cfg.limits)
		if err != nil {
			rep.Err = fmt.Errorf("record %d at offset %d: %w", len(rep.Records), off, err)
			return rep
		}
		rep.Records = append(rep.Records, RecordReport{
			Offset:      off,
			Length:      r.Length,
			Type:        r.Type,
			StoredCRC:   r.CRC,
			ComputedCRC: checksum(r.Type, r.Data),
		})
		off += n
	}
	return rep
}
