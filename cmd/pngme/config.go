package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-pngme"
)

// Config holds CLI defaults. Flags override it.
type Config struct {
	Compression     string `yaml:"compression"`
	MaxChunkLen     uint32 `yaml:"max_chunk_len"`
	MaxChunks       int    `yaml:"max_chunks"`
	MaxMessageBytes uint64 `yaml:"max_message_bytes"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

func (c Config) limits() pngme.Limits {
	return pngme.Limits{
		MaxChunkLen:            c.MaxChunkLen,
		MaxChunks:              c.MaxChunks,
		MaxMessageUncompressed: c.MaxMessageBytes,
	}
}

// defaultConfigPath is $PNGME_CONFIG, else pngme/config.yaml under the
// user config directory.
func defaultConfigPath() string {
	if p := os.Getenv("PNGME_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pngme", "config.yaml")
}

// loadConfig reads the YAML config at path. A missing file or empty path
// yields the zero Config; unknown keys are an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("parsing config %s: %w", path, errBadColor)
	}
	return cfg, nil
}
