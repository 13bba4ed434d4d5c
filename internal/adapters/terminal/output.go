package terminal

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/mattn/go-isatty"

	"wikimap/internal/domain"
)

// Format selects how site map lines are written
type Format string

const (
	FormatAuto  Format = "auto"  // Plain on a terminal, wiki otherwise
	FormatPlain Format = "plain" // Indented display names
	FormatWiki  Format = "wiki"  // Indented [[link|name]] markup
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatAuto, FormatPlain, FormatWiki:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected auto, plain or wiki)", s)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive resolves the format against the output file. The answer is
// fixed for the whole run.
func (f Format) Interactive(out *os.File) bool {
	switch f {
	case FormatPlain:
		return true
	case FormatWiki:
		return false
	default:
		return IsTerminal(out)
	}
}

// WriteSitemap writes one rendered line per node as the nodes arrive and
// returns how many were written
func WriteSitemap(w io.Writer, nodes iter.Seq[domain.VisitedNode], interactive bool) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0
	for node := range nodes {
		if _, err := fmt.Fprintln(bw, domain.RenderNode(node, interactive)); err != nil {
			return count, err
		}
		count++
		// Flush per line so a terminal sees the map grow
		if interactive {
			if err := bw.Flush(); err != nil {
				return count, err
			}
		}
	}
	return count, bw.Flush()
}
