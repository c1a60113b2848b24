package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/logicossoftware/go-pngme"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var errBadColor = errors.New("color must be auto, always or never")

// isTerminal is replaced in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func wantColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "", "auto":
		return isTerminal(w), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("%w: got %q", errBadColor, mode)
}

// renderChunks writes one row per chunk: index, type, data length, CRC and
// the properties encoded in the type's letter case.
func renderChunks(w io.Writer, chunks []*pngme.Chunk, styled bool) error {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	header := fmt.Sprintf("%4s  %-4s  %10s  %-8s  %s", "#", "TYPE", "LENGTH", "CRC", "PROPERTIES")
	if _, err := fmt.Fprintln(w, render(headerStyle, header)); err != nil {
		return err
	}
	for i, c := range chunks {
		ct := c.Type()
		typ := fmt.Sprintf("%-4s", ct)
		if ct.IsCritical() {
			typ = render(criticalStyle, typ)
		}
		row := fmt.Sprintf("%4d  %s  %10d  %08x  %s", i, typ, c.Length(), c.CRC(), properties(ct))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, render(dimStyle, fmt.Sprintf("%d chunks", len(chunks))))
	return err
}

func properties(ct pngme.ChunkType) string {
	p := make([]string, 0, 4)
	if ct.IsCritical() {
		p = append(p, "critical")
	} else {
		p = append(p, "ancillary")
	}
	if ct.IsPublic() {
		p = append(p, "public")
	} else {
		p = append(p, "private")
	}
	if !ct.IsReservedBitValid() {
		p = append(p, "reserved-bit-set")
	}
	if ct.IsSafeToCopy() {
		p = append(p, "safe-to-copy")
	} else {
		p = append(p, "unsafe-to-copy")
	}
	return strings.Join(p, ",")
}
