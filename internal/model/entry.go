package model

import (
	"path/filepath"
	"strings"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/parse"
)

// MusicEntry is one indexed audio file.
//
// Path is the identity key: within one library index every entry has a
// distinct path. Artist and Song hold the two positional segments of the
// parsed filename (either both set or both empty; orientation is decided
// at scoring time). TrackNumber is 0 when the filename carried none.
type MusicEntry struct {
	// Path is the absolute filesystem location of the file.
	Path string

	// Filename is the base name as scanned, never empty.
	Filename string

	// Artist is the left segment of the parsed filename, or the whole
	// stem when no separator was found. Empty if parsing failed entirely.
	Artist string

	// Song is the right segment of the parsed filename, or the whole
	// stem when no separator was found. Empty if parsing failed entirely.
	Song string

	// TrackNumber is the leading track number from the filename, 0 if none.
	TrackNumber int

	// Extension is the lowercase file extension without the dot.
	Extension string
}

// NewMusicEntry builds a MusicEntry by parsing the base name of path.
func NewMusicEntry(path string) *MusicEntry {
	filename := filepath.Base(path)
	res := parse.Filename(filename)

	return &MusicEntry{
		Path:        path,
		Filename:    filename,
		Artist:      res.Left,
		Song:        res.Right,
		TrackNumber: res.TrackNumber,
		Extension:   strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")),
	}
}

// Parsed reports whether the filename yielded artist/song segments.
func (e *MusicEntry) Parsed() bool {
	return e.Artist != "" && e.Song != ""
}

// Stem returns the filename without track number prefix or extension,
// used for degraded whole-string comparison.
func (e *MusicEntry) Stem() string {
	res := parse.Filename(e.Filename)
	if res.Left == "" {
		return strings.TrimSuffix(e.Filename, filepath.Ext(e.Filename))
	}
	if res.Left == res.Right {
		return res.Left
	}
	return res.Left + " - " + res.Right
}

// PlaylistEntry is one non-blank line from an input playlist file.
type PlaylistEntry struct {
	// Raw is the original line, verbatim.
	Raw string

	// Artist is the left segment of the parsed line, empty if the line
	// could not be split at all.
	Artist string

	// Song is the right segment of the parsed line, empty if the line
	// could not be split at all.
	Song string
}

// NewPlaylistEntry parses one playlist line. Parsing never fails: a line
// without a separator keeps the whole text in both segments so that
// whole-string fallback matching still applies.
func NewPlaylistEntry(line string) *PlaylistEntry {
	res := parse.PlaylistLine(line)
	return &PlaylistEntry{
		Raw:    line,
		Artist: res.Left,
		Song:   res.Right,
	}
}

// Parsed reports whether the line yielded artist/song segments.
func (e *PlaylistEntry) Parsed() bool {
	return e.Artist != "" && e.Song != ""
}
