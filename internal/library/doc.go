// Package library builds and queries the in-memory index of scanned
// music files.
//
// # Scanning
//
// A Scanner walks one or more directory roots, keeps files whose
// lowercase extension is in the accepted set, parses each filename into
// a MusicEntry and produces an immutable Index:
//
//	scanner := library.NewScanner([]string{"/music"}, []string{"mp3", "flac"})
//	index, err := scanner.Scan(ctx)
//
// Unreadable directories are skipped and reported as warnings on the
// returned index; they never fail the scan. A cancelled context aborts
// the scan and discards the partial result. Re-scanning produces a new
// Index snapshot; consumers holding the previous one are never
// invalidated mid-iteration.
//
// # Searching
//
// Index supports word-match search: every whitespace token of the query
// must be a substring of at least one of the entry's filename, artist or
// song. An inverted word index prunes candidates before the substring
// check.
//
//	hits := index.Search("love song")
package library
