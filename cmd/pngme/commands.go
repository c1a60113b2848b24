package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/logicossoftware/go-pngme"
)

func runEncode(args []string, stdout, stderr io.Writer) error {
	fset, configPath := newFlagSet("encode", stderr)
	compress := fset.String("compress", "", "compress the message: none, zlib, zstd, lz4 or br")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() < 3 || fset.NArg() > 4 {
		return fmt.Errorf("usage: pngme encode [-compress ALG] FILE TYPE MESSAGE [OUTPUT]")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	path, typ, msg := fset.Arg(0), fset.Arg(1), fset.Arg(2)
	out := path
	if fset.NArg() == 4 {
		out = fset.Arg(3)
	}

	ct, err := pngme.ParseChunkType(typ)
	if err != nil {
		return err
	}
	if !ct.IsValid() {
		return fmt.Errorf("%w: %s has the reserved bit set", pngme.ErrInvalidChunkType, ct)
	}
	name := cfg.Compression
	if *compress != "" {
		name = *compress
	}
	comp, err := pngme.ParseCompression(name)
	if err != nil {
		return err
	}

	doc, mode, err := readDocument(path, cfg)
	if err != nil {
		return err
	}
	data, err := pngme.PackMessage([]byte(msg), pngme.WithCompression(comp), pngme.WithMessageLimits(cfg.limits()))
	if err != nil {
		return err
	}
	doc.AppendChunk(pngme.NewChunk(ct, data))
	if err := writeFileAtomic(out, doc.Bytes(), mode); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s chunk (%d bytes, compression %s) to %s\n", ct, len(data), comp, out)
	return nil
}

func runDecode(args []string, stdout, stderr io.Writer) error {
	fset, configPath := newFlagSet("decode", stderr)
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 2 {
		return fmt.Errorf("usage: pngme decode FILE TYPE")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	path, typ := fset.Arg(0), fset.Arg(1)
	if _, err := pngme.ParseChunkType(typ); err != nil {
		return err
	}

	doc, _, err := readDocument(path, cfg)
	if err != nil {
		return err
	}
	c, ok := doc.ChunkByType(typ)
	if !ok {
		return fmt.Errorf("%w: no %s chunk in %s", pngme.ErrNotFound, typ, path)
	}
	msg, err := c.Message(pngme.WithMessageLimits(cfg.limits()))
	if err != nil {
		return err
	}
	if !utf8.Valid(msg) {
		return fmt.Errorf("%w: %s chunk in %s", pngme.ErrEncoding, typ, path)
	}
	fmt.Fprintln(stdout, string(msg))
	return nil
}

func runRemove(args []string, stdout, stderr io.Writer) error {
	fset, configPath := newFlagSet("remove", stderr)
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 2 {
		return fmt.Errorf("usage: pngme remove FILE TYPE")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	path, typ := fset.Arg(0), fset.Arg(1)

	doc, mode, err := readDocument(path, cfg)
	if err != nil {
		return err
	}
	if _, err := doc.RemoveChunk(typ); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := writeFileAtomic(path, doc.Bytes(), mode); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "removed %s chunk from %s\n", typ, path)
	return nil
}

func runPrint(args []string, stdout, stderr io.Writer) error {
	fset, configPath := newFlagSet("print", stderr)
	color := fset.String("color", "", "colour output: auto, always or never")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 1 {
		return fmt.Errorf("usage: pngme print [-color auto|always|never] FILE")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	mode := cfg.Color
	if *color != "" {
		mode = *color
	}
	styled, err := wantColor(mode, stdout)
	if err != nil {
		return err
	}

	doc, _, err := readDocument(fset.Arg(0), cfg)
	if err != nil {
		return err
	}
	return renderChunks(stdout, doc.Chunks(), styled)
}

// readDocument parses the PNG at path and returns it with the file's mode.
func readDocument(path string, cfg Config) (*pngme.Document, fs.FileMode, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	doc, err := pngme.Parse(b, pngme.WithReadLimits(cfg.limits()))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return doc, fi.Mode().Perm(), nil
}

// writeFileAtomic replaces path with data via a temporary file in the same
// directory, so a failed write never leaves a half-written PNG.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".pngme-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
