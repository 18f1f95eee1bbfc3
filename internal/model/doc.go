// Package model defines the core data structures used throughout
// the music-playlist-manager application.
//
// # MusicEntry
//
// MusicEntry represents one indexed audio file with its parsed metadata:
//
//	entry := model.NewMusicEntry("/music/01 - Artist - Song.mp3")
//	fmt.Println(entry.Artist)      // "Artist" (positional guess)
//	fmt.Println(entry.Song)        // "Song"
//	fmt.Println(entry.TrackNumber) // 1
//
// Artist and Song are positional guesses: for an "A - B" filename they
// hold A and B in that order, and the matching layer decides which is
// really the artist by scoring both orientations.
//
// # PlaylistEntry
//
// PlaylistEntry represents one line of an input playlist file:
//
//	entry := model.NewPlaylistEntry("Daft Punk - Around the World")
//	fmt.Println(entry.Raw)    // original line, verbatim
//	fmt.Println(entry.Artist) // "Daft Punk"
//
// Both types are immutable once created; a library re-scan or playlist
// reload produces fresh values rather than mutating old ones.
package model
