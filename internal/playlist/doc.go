// Package playlist reads input playlist files and writes playlists of
// reconciled matches.
//
// # Loading
//
// Input playlists are plain text, one "Artist - Song" style entry per
// line. Blank lines are skipped; everything else becomes a
// PlaylistEntry with the original line preserved verbatim:
//
//	entries, err := playlist.Load("/path/to/playlist.txt")
//
// # Writing
//
// After matching, a Writer can emit the matched files as an M3U or PLS
// playlist so a media player can play the reconciled set directly:
//
//	writer := playlist.NewWriter(playlist.FormatM3U, true)
//	content := writer.Render(result.Matched())
//	os.WriteFile("matches.m3u", []byte(content), 0644)
package playlist
