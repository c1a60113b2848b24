package pngme

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"testing"

	"github.com/disintegration/imaging"
)

// samplePNG encodes a small real image so tests run against encoder output
// rather than hand-built bytes.
func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(4, 3, color.NRGBA{R: 200, G: 40, B: 90, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func sampleDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(samplePNG(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.n -= len(p)
	return len(p), io.ErrShortWrite
}

func TestParseRealPNG(t *testing.T) {
	doc := sampleDoc(t)
	chunks := doc.Chunks()
	if len(chunks) < 3 {
		t.Fatalf("expected at least IHDR, IDAT, IEND; got %d chunks", len(chunks))
	}
	if chunks[0].Type() != TypeIHDR {
		t.Fatalf("first chunk = %s, want IHDR", chunks[0].Type())
	}
	if chunks[len(chunks)-1].Type() != TypeIEND {
		t.Fatalf("last chunk = %s, want IEND", chunks[len(chunks)-1].Type())
	}
	if _, ok := doc.ChunkByType("IDAT"); !ok {
		t.Fatal("expected an IDAT chunk")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	in := samplePNG(t)
	doc, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(doc.Bytes(), in) {
		t.Fatal("Bytes() differs from parsed input")
	}
}

func TestParseDoesNotAliasInput(t *testing.T) {
	in := samplePNG(t)
	want := bytes.Clone(in)
	doc, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		in[i] = 0
	}
	if !bytes.Equal(doc.Bytes(), want) {
		t.Fatal("document changed when input buffer was overwritten")
	}
}

func TestAppendThenFind(t *testing.T) {
	doc := sampleDoc(t)
	before := doc.Bytes()
	c := NewChunk(MustParseChunkType("teSt"), []byte("hello"))
	doc.AppendChunk(c)

	got, ok := doc.ChunkByType("teSt")
	if !ok {
		t.Fatal("appended chunk not found")
	}
	s, err := got.DataString()
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" {
		t.Fatalf("DataString = %q, want %q", s, "hello")
	}

	chunks := doc.Chunks()
	if chunks[len(chunks)-1] != c {
		t.Fatal("appended chunk is not last")
	}
	want := append(bytes.Clone(before), c.Bytes()...)
	if !bytes.Equal(doc.Bytes(), want) {
		t.Fatal("Bytes() after append is not original followed by the new chunk")
	}
}

func TestAppendedDocumentReparses(t *testing.T) {
	doc := sampleDoc(t)
	doc.AppendChunk(NewChunk(MustParseChunkType("ruSt"), []byte("secret")))
	again, err := Parse(doc.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	c, ok := again.ChunkByType("ruSt")
	if !ok {
		t.Fatal("chunk lost on reparse")
	}
	if s, _ := c.DataString(); s != "secret" {
		t.Fatalf("got %q", s)
	}
}

func TestRemoveThenFind(t *testing.T) {
	doc := sampleDoc(t)
	orig := doc.Bytes()
	doc.AppendChunk(NewChunk(MustParseChunkType("teSt"), []byte("hello")))

	removed, err := doc.RemoveChunk("teSt")
	if err != nil {
		t.Fatalf("RemoveChunk: %v", err)
	}
	if s, _ := removed.DataString(); s != "hello" {
		t.Fatalf("removed chunk data = %q", s)
	}
	if _, ok := doc.ChunkByType("teSt"); ok {
		t.Fatal("chunk still present after removal")
	}
	if !bytes.Equal(doc.Bytes(), orig) {
		t.Fatal("document not restored after append+remove")
	}
	_, err = doc.RemoveChunk("teSt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveFirstOfDuplicates(t *testing.T) {
	ct := MustParseChunkType("dUpe")
	a := NewChunk(ct, []byte("first"))
	mid := NewChunk(MustParseChunkType("miDl"), nil)
	b := NewChunk(ct, []byte("second"))
	doc := New(a, mid, b)

	removed, err := doc.RemoveChunk("dUpe")
	if err != nil {
		t.Fatal(err)
	}
	if removed != a {
		t.Fatal("expected first duplicate to be removed")
	}
	chunks := doc.Chunks()
	if len(chunks) != 2 || chunks[0] != mid || chunks[1] != b {
		t.Fatalf("unexpected remaining order: %v", chunks)
	}
	if got, _ := doc.ChunkByType("dUpe"); got != b {
		t.Fatal("expected second duplicate to be found next")
	}
	if _, err := doc.RemoveChunk("dUpe"); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.RemoveChunk("dUpe"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveInvalidTypeLeavesDocument(t *testing.T) {
	doc := sampleDoc(t)
	before := doc.Bytes()
	for _, s := range []string{"Ru1t", "abc", "toolong", ""} {
		_, err := doc.RemoveChunk(s)
		if !errors.Is(err, ErrInvalidChunkType) {
			t.Fatalf("%q: expected ErrInvalidChunkType, got %v", s, err)
		}
	}
	if !bytes.Equal(doc.Bytes(), before) {
		t.Fatal("failed removal changed the document")
	}
}

func TestChunkByTypeMalformed(t *testing.T) {
	doc := sampleDoc(t)
	if c, ok := doc.ChunkByType("1234"); ok || c != nil {
		t.Fatal("malformed type must match nothing")
	}
	if c, ok := doc.ChunkByType("zzZz"); ok || c != nil {
		t.Fatal("absent type must match nothing")
	}
}

func TestChunksByType(t *testing.T) {
	ct := MustParseChunkType("tEXt")
	a := NewChunk(ct, []byte("a"))
	b := NewChunk(ct, []byte("b"))
	doc := New(a, NewChunk(TypeIEND, nil), b)
	got := doc.ChunksByType("tEXt")
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("ChunksByType = %v", got)
	}
	if got := doc.ChunksByType("bad!"); got != nil {
		t.Fatal("expected nil for malformed type")
	}
}

func TestChunksReturnsCopy(t *testing.T) {
	doc := sampleDoc(t)
	chunks := doc.Chunks()
	n := len(chunks)
	chunks[0] = nil
	_ = append(chunks[:1], chunks[2:]...)
	if got := doc.Chunks(); len(got) != n || got[0] == nil {
		t.Fatal("mutating Chunks() result changed the document")
	}
}

func TestSignatureEnforcement(t *testing.T) {
	in := samplePNG(t)
	for i := 0; i < len(Signature); i++ {
		b := bytes.Clone(in)
		b[i] ^= 0x01
		if _, err := Parse(b); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("byte %d: expected ErrSignatureMismatch, got %v", i, err)
		}
	}
	for _, b := range [][]byte{nil, {}, Signature[:7], []byte("GIF89a\x00\x00\x00\x00")} {
		if _, err := Parse(b); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("%x: expected ErrSignatureMismatch, got %v", b, err)
		}
	}
}

func TestSignatureOnly(t *testing.T) {
	doc, err := Parse(Signature[:])
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Chunks()) != 0 {
		t.Fatal("expected no chunks")
	}
	if !bytes.Equal(doc.Bytes(), Signature[:]) {
		t.Fatal("expected signature only")
	}
}

func TestNewDocument(t *testing.T) {
	doc := New()
	if !bytes.Equal(doc.Bytes(), Signature[:]) {
		t.Fatal("empty document must serialise to the signature")
	}
	doc.AppendChunk(NewChunk(TypeIEND, nil))
	again, err := Parse(doc.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := again.ChunkByType("IEND"); !ok {
		t.Fatal("expected IEND")
	}
}

func TestParseTruncatedDocument(t *testing.T) {
	in := samplePNG(t)
	doc, err := Parse(in[:len(in)-1])
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if doc != nil {
		t.Fatal("no partial document may be returned")
	}
}

func TestParseCorruptChunk(t *testing.T) {
	in := samplePNG(t)
	// First byte of IHDR data: signature, length and type precede it.
	in[len(Signature)+8] ^= 0x80
	_, err := Parse(in)
	if !errors.Is(err, ErrCRCMismatch) {
		t.Fatalf("expected ErrCRCMismatch, got %v", err)
	}
	var ce *CRCError
	if !errors.As(err, &ce) || ce.Type != "IHDR" {
		t.Fatalf("expected *CRCError for IHDR, got %v", err)
	}
}

func TestParseMaxChunks(t *testing.T) {
	in := samplePNG(t)
	_, err := Parse(in, WithReadLimits(Limits{MaxChunks: 1}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecodeEncode(t *testing.T) {
	in := samplePNG(t)
	doc, err := Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), in) {
		t.Fatal("Encode output differs from input")
	}
}

func TestDecodeReadError(t *testing.T) {
	orig := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrUnexpectedEOF }
	defer func() { readAll = orig }()
	if _, err := Decode(bytes.NewReader(nil)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestEncodeWriterError(t *testing.T) {
	doc := sampleDoc(t)
	if err := Encode(&failingWriter{n: 10}, doc); err == nil {
		t.Fatal("expected error")
	}
}
