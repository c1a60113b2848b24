package pngme

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// frameMarker opens a compressed message. The leading NUL keeps it from
// colliding with text payloads.
var frameMarker = [4]byte{0x00, 'p', 'z', 0x01}

// frameHeaderSize is the marker, one compression byte and an 8-byte
// little-endian uncompressed length.
const frameHeaderSize = len(frameMarker) + 1 + 8

// PackMessage prepares msg for storage as chunk data.
//
// With CompNone (the default) the message is returned unchanged, so plain
// text chunks stay readable by any tool. A message that itself starts with
// a frame marker is wrapped in a CompNone frame so it unpacks to the same
// bytes. Otherwise the result is a frame holding the compression id, the
// uncompressed length and the compressed bytes.
func PackMessage(msg []byte, opts ...MessageOption) ([]byte, error) {
	cfg := newMessageConfig(opts)
	if uint64(len(msg)) > cfg.limits.MaxMessageUncompressed {
		return nil, fmt.Errorf("%w: message is %d bytes", ErrLimitExceeded, len(msg))
	}
	if cfg.compression == CompNone {
		if IsPackedMessage(msg) {
			return appendFrame(CompNone, msg, msg), nil
		}
		return bytes.Clone(msg), nil
	}
	compressed, err := compress(cfg.compression, msg)
	if err != nil {
		return nil, err
	}
	return appendFrame(cfg.compression, msg, compressed), nil
}

func appendFrame(comp Compression, msg, body []byte) []byte {
	out := make([]byte, 0, frameHeaderSize+len(body))
	out = append(out, frameMarker[:]...)
	out = append(out, byte(comp))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(msg)))
	return append(out, body...)
}

// IsPackedMessage reports whether data starts with a compressed message frame.
func IsPackedMessage(data []byte) bool {
	return len(data) >= frameHeaderSize && bytes.Equal(data[:len(frameMarker)], frameMarker[:])
}

// UnpackMessage reverses PackMessage. Data that is not a frame is returned
// unchanged, and a CompNone frame yields its body. A frame with an unknown
// compression id or a bad length fails
// with ErrInvalidPayload, and one whose declared length exceeds
// MaxMessageUncompressed fails with ErrLimitExceeded before any
// decompression.
func UnpackMessage(data []byte, opts ...MessageOption) ([]byte, error) {
	cfg := newMessageConfig(opts)
	if !IsPackedMessage(data) {
		return bytes.Clone(data), nil
	}
	comp := Compression(data[len(frameMarker)])
	n := binary.LittleEndian.Uint64(data[len(frameMarker)+1 : frameHeaderSize])
	if n > cfg.limits.MaxMessageUncompressed {
		return nil, fmt.Errorf("%w: uncompressed length %d exceeds limit", ErrLimitExceeded, n)
	}
	if comp == CompNone {
		body := data[frameHeaderSize:]
		if uint64(len(body)) != n {
			return nil, fmt.Errorf("%w: stored length %d != declared %d", ErrInvalidPayload, len(body), n)
		}
		return bytes.Clone(body), nil
	}
	return decompress(comp, data[frameHeaderSize:], n)
}

// Message returns the chunk's data with any compression frame removed.
func (c *Chunk) Message(opts ...MessageOption) ([]byte, error) {
	return UnpackMessage(c.data, opts...)
}
