// Package pngme reads, edits and writes the chunk structure of PNG files.
//
// A PNG file is an 8-byte signature followed by chunks. Each chunk is a
// big-endian length, a 4-letter type code, that many bytes of data and a
// CRC-32 over the type and data. pngme parses a file into a [Document],
// lets callers add, find and remove chunks, and writes the result back
// without touching the chunks it was not asked to change. Image data is
// never decoded.
//
// # Basic Usage
//
// To hide a message in an ancillary chunk:
//
//	doc, err := pngme.Parse(fileBytes)
//	if err != nil {
//		return err
//	}
//	ct, err := pngme.ParseChunkType("ruSt")
//	if err != nil {
//		return err
//	}
//	doc.AppendChunk(pngme.NewChunk(ct, []byte("hello")))
//	out := doc.Bytes()
//
// To read it back:
//
//	c, ok := doc.ChunkByType("ruSt")
//	if ok {
//		msg, err := c.DataString()
//	}
//
// # Messages
//
// [PackMessage] optionally compresses a message with zlib, Zstandard, LZ4
// or Brotli before it is stored; [UnpackMessage] and [Chunk.Message] undo
// it. Uncompressed messages are stored verbatim unless they begin with the
// frame marker, in which case they are wrapped in an uncompressed frame.
//
// # Errors
//
// Every failure wraps one of the package's sentinel errors
// (ErrInvalidChunkType, ErrTruncated, ErrCRCMismatch, ErrSignatureMismatch,
// ErrNotFound, ErrEncoding, ErrLimitExceeded, ErrInvalidPayload); use
// errors.Is to tell them apart. Operations that fail leave the Document
// unchanged.
package pngme
