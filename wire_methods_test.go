package pngme

import (
	"hash/crc32"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	typ := [4]byte{'t', 'E', 'X', 't'}
	data := []byte("Comment\x00hello")
	crc := checksum(typ, data)
	b := appendRecord([]byte{0xAA}, typ, data, crc)

	r, n, err := readRecord(b[1:], DefaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if n != len(b)-1 {
		t.Fatalf("consumed %d, want %d", n, len(b)-1)
	}
	if r.Length != uint32(len(data)) || r.Type != typ || string(r.Data) != string(data) || r.CRC != crc {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestChecksumMatchesIEEE(t *testing.T) {
	typ := [4]byte{'I', 'E', 'N', 'D'}
	if got, want := checksum(typ, nil), crc32.ChecksumIEEE(typ[:]); got != want {
		t.Fatalf("checksum = %#08x, want %#08x", got, want)
	}
	// Every PNG ends with this exact IEND chunk.
	if checksum(typ, nil) != 0xAE426082 {
		t.Fatal("IEND CRC mismatch")
	}
}
