package parse

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Result is the outcome of parsing one filename or playlist line.
//
// Left and Right are the two segments around the first hyphen separator,
// in their original order; the caller decides which is the artist and
// which is the song by scoring both orientations. When no separator is
// found, Left and Right both hold the whole (post-strip) string so that
// degraded whole-string comparison still works. A zero Result means the
// input was empty after stripping.
type Result struct {
	// Left is the segment before the first hyphen separator.
	Left string

	// Right is the segment after the first hyphen separator.
	Right string

	// TrackNumber is the leading track number, or 0 if none was found.
	// Only ever set for filenames, never for playlist lines.
	TrackNumber int
}

// Split reports whether the input was split into two distinct segments.
func (r Result) Split() bool {
	return r.Left != "" && r.Left != r.Right
}

var (
	// Leading track number: up to three digits followed by separator chars.
	trackNumberRe = regexp.MustCompile(`^(\d{1,3})[\s_.\-]+`)

	// First hyphen-class separator: a hyphen with optional surrounding
	// underscore/whitespace runs ("Artist - Song", "Artist_-_Song",
	// "Artist-Song").
	separatorRe = regexp.MustCompile(`[\s_]*-[\s_]*`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Filename parses a music file's base name.
//
// Heuristics, in order: strip a leading track number, strip the file
// extension, then split on the first hyphen separator. Segments keep any
// further hyphens ("Artist - Song - Live" splits into "Artist" and
// "Song - Live").
func Filename(name string) Result {
	stem := name
	if ext := filepath.Ext(stem); ext != "" {
		stem = strings.TrimSuffix(stem, ext)
	}

	var trackNumber int
	if m := trackNumberRe.FindStringSubmatch(stem); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			trackNumber = n
			stem = stem[len(m[0]):]
		}
	}

	res := split(stem)
	res.TrackNumber = trackNumber
	return res
}

// PlaylistLine parses one "Artist - Song" style plain text line.
//
// Unlike Filename it never strips track numbers or extensions: a line
// like "2 Unlimited - No Limit" must keep the leading "2" as part of the
// artist name.
func PlaylistLine(line string) Result {
	return split(line)
}

// split divides s on the first hyphen separator into two segments.
// A split producing an empty segment is treated as no split at all, so
// inputs like "- Song" degrade to the blob form.
func split(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{}
	}

	if loc := separatorRe.FindStringIndex(s); loc != nil {
		left := normalizeSegment(s[:loc[0]])
		right := normalizeSegment(s[loc[1]:])
		if left != "" && right != "" {
			return Result{Left: left, Right: right}
		}
	}

	// No usable separator: the whole string is both segments, which lets
	// the scorer fall back to whole-string comparison.
	blob := normalizeSegment(s)
	if blob == "" {
		return Result{}
	}
	return Result{Left: blob, Right: blob}
}

// normalizeSegment collapses underscore and whitespace runs to single
// spaces and trims the edges.
func normalizeSegment(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
