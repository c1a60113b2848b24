package pngme

// Signature is the 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// Standard chunk types the tools refer to by name.
var (
	TypeIHDR = ChunkType{b: [4]byte{'I', 'H', 'D', 'R'}}
	TypeIDAT = ChunkType{b: [4]byte{'I', 'D', 'A', 'T'}}
	TypeIEND = ChunkType{b: [4]byte{'I', 'E', 'N', 'D'}}
	TypeTEXt = ChunkType{b: [4]byte{'t', 'E', 'X', 't'}}
)

type Compression uint8

const (
	CompNone Compression = 0x0
	CompZlib Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

// Document is an in-memory PNG datastream: the signature followed by an
// ordered sequence of chunks.
//
// A Document performs no locking; callers sharing one across goroutines
// must serialise access themselves.
type Document struct {
	chunks []*Chunk
}

// New returns a Document holding chunks in the given order.
func New(chunks ...*Chunk) *Document {
	d := &Document{chunks: make([]*Chunk, 0, len(chunks))}
	d.chunks = append(d.chunks, chunks...)
	return d
}
