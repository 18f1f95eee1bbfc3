// Package parse converts raw filenames and playlist lines into a
// structured (left segment, right segment, track number) guess.
//
// Music filenames are wildly inconsistent: "01 - Artist - Song.mp3",
// "Artist_-_Song.flac", "Song - Artist.mp3", "JustASong.mp3". The parser
// applies ordered heuristics and never fails; when nothing can be split
// it degrades to a single blob usable for whole-string comparison.
//
// # Orientation
//
// Both "Artist - Song" and "Song - Artist" are valid inputs, so the
// parser deliberately does NOT decide which segment is which. It returns
// the two segments positionally (Left, Right) and the matching layer
// scores both orientations, keeping the better one. A hard-coded guess
// here would silently exclude correct matches.
//
// # Usage
//
//	res := parse.Filename("01 - Daft Punk - Harder Better.mp3")
//	// res.TrackNumber = 1
//	// res.Left  = "Daft Punk"
//	// res.Right = "Harder Better"
//
//	res = parse.PlaylistLine("Daft Punk - Harder Better")
//	// same split, but no track number or extension stripping
package parse
