package pngme

import "fmt"

// propertyBit is the bit that carries a chunk type's property flag in each
// of its four bytes: the ASCII case bit.
const propertyBit = 1 << 5

// ChunkType is a 4-byte PNG chunk type code. The case of each letter encodes
// one property: ancillary, private, reserved and safe-to-copy, in byte order.
//
// The zero value is not a valid chunk type; use NewChunkType or
// ParseChunkType to build one.
type ChunkType struct {
	b [4]byte
}

// NewChunkType builds a ChunkType from raw bytes. Every byte must be an
// ASCII letter.
func NewChunkType(b [4]byte) (ChunkType, error) {
	for i, c := range b {
		if !isTypeByte(c) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is %#02x, want an ASCII letter", ErrInvalidChunkType, i, c)
		}
	}
	return ChunkType{b: b}, nil
}

// ParseChunkType builds a ChunkType from its 4-character text form, e.g. "tEXt".
// Input of any other length is refused rather than truncated, so "tEXtra"
// is an error and not "tEXt".
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q is %d bytes, want 4", ErrInvalidChunkType, s, len(s))
	}
	return NewChunkType([4]byte{s[0], s[1], s[2], s[3]})
}

// MustParseChunkType is like ParseChunkType but panics on error.
func MustParseChunkType(s string) ChunkType {
	ct, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return ct
}

func isTypeByte(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Bytes returns a copy of the raw type code.
func (ct ChunkType) Bytes() [4]byte { return ct.b }

// IsCritical reports whether decoders must understand the chunk to render
// the image (uppercase first letter).
func (ct ChunkType) IsCritical() bool { return ct.b[0]&propertyBit == 0 }

// IsPublic reports whether the type is registered by the PNG specification
// (uppercase second letter).
func (ct ChunkType) IsPublic() bool { return ct.b[1]&propertyBit == 0 }

// IsReservedBitValid reports whether the third letter is uppercase, as the
// current PNG specification requires.
func (ct ChunkType) IsReservedBitValid() bool { return ct.b[2]&propertyBit == 0 }

// IsSafeToCopy reports whether editors that do not recognise the chunk may
// copy it into a modified image (lowercase fourth letter).
func (ct ChunkType) IsSafeToCopy() bool { return ct.b[3]&propertyBit != 0 }

// IsValid reports whether every byte is an ASCII letter and the reserved
// bit is clear.
func (ct ChunkType) IsValid() bool {
	for _, c := range ct.b {
		if !isTypeByte(c) {
			return false
		}
	}
	return ct.IsReservedBitValid()
}

func (ct ChunkType) String() string { return string(ct.b[:]) }
