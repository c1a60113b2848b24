package pngme

import "io"

// Bytes returns the signature followed by every chunk in document order.
// For a Document produced by Parse and not modified since, the result is
// identical to the parsed input.
func (d *Document) Bytes() []byte {
	size := len(Signature)
	for _, c := range d.chunks {
		size += chunkOverhead + len(c.data)
	}
	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, c := range d.chunks {
		out = appendRecord(out, c.typ.b, c.data, c.crc)
	}
	return out
}

// Encode writes the result of d.Bytes to w.
func Encode(w io.Writer, d *Document) error {
	_, err := w.Write(d.Bytes())
	return err
}
