package playlist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/match"
)

// Format represents supported output playlist formats.
type Format int

const (
	// FormatM3U creates .m3u content (most widely supported).
	// Can be extended with EXTINF lines carrying artist/song info.
	FormatM3U Format = iota

	// FormatPLS creates .pls content (Winamp/SHOUTcast INI style).
	FormatPLS
)

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// ParseFormat maps a settings string ("m3u", "pls") to a Format,
// defaulting to M3U.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "pls") {
		return FormatPLS
	}
	return FormatM3U
}

// Writer renders matched candidates as playlist file content.
//
// Paths in the output are absolute, pointing at the library files the
// candidates were matched to; the playlist is playable without copying
// anything.
type Writer struct {
	format   Format
	extended bool // for M3U: include EXTINF lines
}

// NewWriter creates a Writer. extended controls EXTINF lines and only
// applies to the M3U format.
func NewWriter(format Format, extended bool) *Writer {
	return &Writer{format: format, extended: extended}
}

// Render returns playlist content for the given candidates, in order.
// Candidates without an entry are skipped.
func (w *Writer) Render(candidates []match.Candidate) string {
	if w.format == FormatPLS {
		return w.renderPLS(candidates)
	}
	return w.renderM3U(candidates)
}

func (w *Writer) renderM3U(candidates []match.Candidate) string {
	var sb strings.Builder

	if w.extended {
		sb.WriteString("#EXTM3U\n")
	}
	for _, c := range candidates {
		if c.Entry == nil {
			continue
		}
		if w.extended {
			// Duration is unknown for scanned files; -1 is the M3U
			// convention for "unspecified".
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", c.Playlist.Raw))
		}
		sb.WriteString(c.Entry.Path + "\n")
	}

	return sb.String()
}

func (w *Writer) renderPLS(candidates []match.Candidate) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")
	n := 0
	for _, c := range candidates {
		if c.Entry == nil {
			continue
		}
		n++
		sb.WriteString(fmt.Sprintf("File%d=%s\n", n, c.Entry.Path))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", n, strings.TrimSuffix(c.Entry.Filename, filepath.Ext(c.Entry.Filename))))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", n))
	}
	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", n))
	sb.WriteString("Version=2\n")

	return sb.String()
}
