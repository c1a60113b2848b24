// Package main provides C-compatible exports for the pngme library.
// Build with: go build -buildmode=c-shared -o pngme.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} PngmeResult;
*/
import "C"

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/logicossoftware/go-pngme"
)

func main() {}

// PngmeFreeResult frees memory allocated by other Pngme functions.
// Must be called to avoid memory leaks.
//
//export PngmeFreeResult
func PngmeFreeResult(result C.PngmeResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.PngmeResult {
	var result C.PngmeResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.PngmeResult {
	var result C.PngmeResult
	result.error = C.CString(err.Error())
	return result
}

// PngmeEncode appends a chunk holding message to a PNG.
// Parameters:
//   - data, dataLen: PNG file bytes
//   - chunkType: 4-letter chunk type, e.g. "ruSt"
//   - message, messageLen: bytes to store
//   - compression: 0=None, 1=zlib, 2=ZSTD, 3=LZ4, 4=Brotli
//
// Returns PngmeResult with the new PNG bytes or an error. Call PngmeFreeResult when done.
//
//export PngmeEncode
func PngmeEncode(
	data *C.char,
	dataLen C.int,
	chunkType *C.char,
	message *C.char,
	messageLen C.int,
	compression C.uint8_t,
) C.PngmeResult {
	doc, err := pngme.Parse(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	ct, err := pngme.ParseChunkType(C.GoString(chunkType))
	if err != nil {
		return makeError(err)
	}
	if !ct.IsValid() {
		return makeError(fmt.Errorf("%w: %s has the reserved bit set", pngme.ErrInvalidChunkType, ct))
	}
	msg := C.GoBytes(unsafe.Pointer(message), messageLen)
	payload, err := pngme.PackMessage(msg, pngme.WithCompression(pngme.Compression(compression)))
	if err != nil {
		return makeError(err)
	}
	doc.AppendChunk(pngme.NewChunk(ct, payload))
	return makeResult(doc.Bytes())
}

// PngmeDecode returns the message stored in the first chunk of the given type.
//
//export PngmeDecode
func PngmeDecode(data *C.char, dataLen C.int, chunkType *C.char) C.PngmeResult {
	doc, err := pngme.Parse(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	typ := C.GoString(chunkType)
	c, ok := doc.ChunkByType(typ)
	if !ok {
		return makeError(fmt.Errorf("%w: no %s chunk", pngme.ErrNotFound, typ))
	}
	msg, err := c.Message()
	if err != nil {
		return makeError(err)
	}
	return makeResult(msg)
}

// PngmeRemove removes the first chunk of the given type and returns the
// resulting PNG bytes.
//
//export PngmeRemove
func PngmeRemove(data *C.char, dataLen C.int, chunkType *C.char) C.PngmeResult {
	doc, err := pngme.Parse(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	if _, err := doc.RemoveChunk(C.GoString(chunkType)); err != nil {
		return makeError(err)
	}
	return makeResult(doc.Bytes())
}

// PngmePrint returns a JSON array describing each chunk in file order.
//
//export PngmePrint
func PngmePrint(data *C.char, dataLen C.int) C.PngmeResult {
	doc, err := pngme.Parse(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	chunks := doc.Chunks()
	out := make([]map[string]any, len(chunks))
	for i, c := range chunks {
		ct := c.Type()
		out[i] = map[string]any{
			"type":       ct.String(),
			"length":     c.Length(),
			"crc":        c.CRC(),
			"critical":   ct.IsCritical(),
			"public":     ct.IsPublic(),
			"safeToCopy": ct.IsSafeToCopy(),
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return makeError(err)
	}
	return makeResult(b)
}
