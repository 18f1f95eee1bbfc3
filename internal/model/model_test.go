package model

import "testing"

func TestNewMusicEntry(t *testing.T) {
	tests := []struct {
		path      string
		artist    string
		song      string
		track     int
		extension string
	}{
		{"/music/01 - Artist - Song.mp3", "Artist", "Song", 1, "mp3"},
		{"/music/Artist_-_Song.FLAC", "Artist", "Song", 0, "flac"},
		{"/music/SongOnly.mp3", "SongOnly", "SongOnly", 0, "mp3"},
		{"/music/07 Artist - Song.ogg", "Artist", "Song", 7, "ogg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := NewMusicEntry(tt.path)
			if e.Path != tt.path {
				t.Errorf("Path = %q, want %q", e.Path, tt.path)
			}
			if e.Artist != tt.artist || e.Song != tt.song {
				t.Errorf("segments = (%q, %q), want (%q, %q)", e.Artist, e.Song, tt.artist, tt.song)
			}
			if e.TrackNumber != tt.track {
				t.Errorf("TrackNumber = %d, want %d", e.TrackNumber, tt.track)
			}
			if e.Extension != tt.extension {
				t.Errorf("Extension = %q, want %q", e.Extension, tt.extension)
			}
			if !e.Parsed() {
				t.Error("Parsed() should be true")
			}
		})
	}
}

func TestMusicEntry_Stem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/01 - Artist - Song.mp3", "Artist - Song"},
		{"/music/SongOnly.mp3", "SongOnly"},
		{"/music/Some_Artist - Some_Song.mp3", "Some Artist - Some Song"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NewMusicEntry(tt.path).Stem(); got != tt.want {
				t.Errorf("Stem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPlaylistEntry(t *testing.T) {
	e := NewPlaylistEntry("Daft Punk - Around the World")
	if e.Raw != "Daft Punk - Around the World" {
		t.Errorf("Raw = %q, want original line", e.Raw)
	}
	if e.Artist != "Daft Punk" || e.Song != "Around the World" {
		t.Errorf("segments = (%q, %q), want (Daft Punk, Around the World)", e.Artist, e.Song)
	}

	blob := NewPlaylistEntry("Yesterday")
	if blob.Artist != "Yesterday" || blob.Song != "Yesterday" {
		t.Errorf("blob segments = (%q, %q), want both %q", blob.Artist, blob.Song, "Yesterday")
	}
}

func TestPlaylistEntry_BothOrNeither(t *testing.T) {
	// Parsing must never emit a half-populated pair.
	for _, line := range []string{"A - B", "OnlyOne", "- B", "A -", ""} {
		e := NewPlaylistEntry(line)
		if (e.Artist == "") != (e.Song == "") {
			t.Errorf("entry %q has half-parsed pair: (%q, %q)", line, e.Artist, e.Song)
		}
	}
}
