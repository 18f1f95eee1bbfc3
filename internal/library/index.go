package library

import (
	"regexp"
	"strings"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/model"
)

// Index is an immutable snapshot of scanned music files.
//
// Entries are held in ascending path order, which makes rebuilds from an
// unchanged filesystem yield an equal index and gives downstream
// consumers a deterministic iteration order. An inverted word index maps
// every lowercase word of filename/artist/song to the entries containing
// it; it is built once at construction and used by the matcher to prune
// candidates.
type Index struct {
	entries  []*model.MusicEntry
	byPath   map[string]*model.MusicEntry
	byToken  map[string][]*model.MusicEntry
	warnings []string
}

// NewIndex builds an Index from the given entries. Entries must already
// be sorted by path with distinct paths; the Scanner guarantees both.
func NewIndex(entries []*model.MusicEntry, warnings []string) *Index {
	idx := &Index{
		entries:  entries,
		byPath:   make(map[string]*model.MusicEntry, len(entries)),
		byToken:  make(map[string][]*model.MusicEntry),
		warnings: warnings,
	}

	for _, e := range entries {
		idx.byPath[e.Path] = e
		for _, tok := range entryTokens(e) {
			idx.byToken[tok] = append(idx.byToken[tok], e)
		}
	}

	return idx
}

// All returns the indexed entries in ascending path order. The returned
// slice is shared; callers must not modify it.
func (idx *Index) All() []*model.MusicEntry {
	return idx.entries
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// ByPath returns the entry with the given path, or nil.
func (idx *Index) ByPath(path string) *model.MusicEntry {
	return idx.byPath[path]
}

// ByToken returns the entries whose filename, artist or song contains
// the given lowercase word. Used as a pruning accelerator; substring
// queries must not rely on it.
func (idx *Index) ByToken(token string) []*model.MusicEntry {
	return idx.byToken[token]
}

// Warnings returns the non-fatal problems encountered while scanning,
// such as unreadable directories.
func (idx *Index) Warnings() []string {
	return idx.warnings
}

// Search returns the entries matching every token of query.
//
// The query is split on whitespace into lowercase, punctuation-stripped
// tokens. An entry matches when each token is a substring of at least
// one of its filename, artist or song. Results come back in index
// (path) order. An empty or all-punctuation query matches nothing.
func (idx *Index) Search(query string) []*model.MusicEntry {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		// Explicit guard: an empty query must not degrade into
		// "match everything".
		return nil
	}

	var hits []*model.MusicEntry
	for _, e := range idx.entries {
		if entryMatches(e, tokens) {
			hits = append(hits, e)
		}
	}
	return hits
}

// entryMatches reports whether every token is a substring of one of the
// entry's searchable fields.
func entryMatches(e *model.MusicEntry, tokens []string) bool {
	fields := []string{
		strings.ToLower(e.Filename),
		strings.ToLower(e.Artist),
		strings.ToLower(e.Song),
	}

	for _, tok := range tokens {
		found := false
		for _, f := range fields {
			if strings.Contains(f, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize splits s into lowercase words, treating any punctuation run
// as a separator.
func Tokenize(s string) []string {
	return strings.Fields(nonWordRe.ReplaceAllString(strings.ToLower(s), " "))
}

// entryTokens returns the distinct words of an entry's searchable fields.
func entryTokens(e *model.MusicEntry) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, field := range []string{e.Filename, e.Artist, e.Song} {
		for _, tok := range Tokenize(field) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
