package pngme

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

const (
	lengthFieldSize = 4
	typeFieldSize   = 4
	crcFieldSize    = 4

	chunkOverhead = lengthFieldSize + typeFieldSize + crcFieldSize
)

// record is one length/type/data/crc block as laid out on the wire. Data
// aliases the buffer it was read from.
type record struct {
	Length uint32
	Type   [4]byte
	Data   []byte
	CRC    uint32
}

// readRecord reads the record at the start of b and returns it with the
// number of bytes it occupies. It checks framing only; type and CRC are
// left to the caller.
func readRecord(b []byte, limits Limits) (record, int, error) {
	if len(b) < lengthFieldSize {
		return record{}, 0, fmt.Errorf("%w: need %d bytes for length, have %d", ErrTruncated, lengthFieldSize, len(b))
	}
	var r record
	r.Length = binary.BigEndian.Uint32(b[0:4])
	if r.Length > limits.MaxChunkLen {
		if need := uint64(chunkOverhead) + uint64(r.Length); uint64(len(b)) < need {
			return record{}, 0, fmt.Errorf("%w: chunk length %d: %w: need %d bytes, have %d", ErrLimitExceeded, r.Length, ErrTruncated, need, len(b))
		}
		return record{}, 0, fmt.Errorf("%w: chunk length %d", ErrLimitExceeded, r.Length)
	}
	if len(b) < lengthFieldSize+typeFieldSize {
		return record{}, 0, fmt.Errorf("%w: need %d bytes for type, have %d", ErrTruncated, typeFieldSize, len(b)-lengthFieldSize)
	}
	copy(r.Type[:], b[4:8])
	end := uint64(chunkOverhead) + uint64(r.Length)
	if uint64(len(b)) < end-crcFieldSize {
		return record{}, 0, fmt.Errorf("%w: need %d bytes for data, have %d", ErrTruncated, r.Length, len(b)-8)
	}
	if uint64(len(b)) < end {
		return record{}, 0, fmt.Errorf("%w: need %d bytes for CRC, have %d", ErrTruncated, crcFieldSize, uint64(len(b))-(end-crcFieldSize))
	}
	n := int(end)
	r.Data = b[8 : n-crcFieldSize]
	r.CRC = binary.BigEndian.Uint32(b[n-crcFieldSize : n])
	return r, n, nil
}

// appendRecord appends the wire form of a record to dst.
func appendRecord(dst []byte, typ [4]byte, data []byte, crc uint32) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, typ[:]...)
	dst = append(dst, data...)
	return binary.BigEndian.AppendUint32(dst, crc)
}

// checksum computes the CRC-32/IEEE of a chunk's type followed by its data.
func checksum(typ [4]byte, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, typ[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
