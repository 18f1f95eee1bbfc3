package parse

import "testing"

func TestFilename(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLeft    string
		wantRight   string
		wantTrack   int
		wantIsSplit bool
	}{
		{
			name:        "track number artist song",
			input:       "01 - Artist - Song.mp3",
			wantLeft:    "Artist",
			wantRight:   "Song",
			wantTrack:   1,
			wantIsSplit: true,
		},
		{
			name:        "underscore separators",
			input:       "Artist_-_Song.flac",
			wantLeft:    "Artist",
			wantRight:   "Song",
			wantIsSplit: true,
		},
		{
			name:        "no separator",
			input:       "SongOnly.mp3",
			wantLeft:    "SongOnly",
			wantRight:   "SongOnly",
			wantIsSplit: false,
		},
		{
			name:        "multiple hyphens split on first",
			input:       "Artist - Song - Live.mp3",
			wantLeft:    "Artist",
			wantRight:   "Song - Live",
			wantIsSplit: true,
		},
		{
			name:        "three digit track with dot",
			input:       "103. Artist - Song.ogg",
			wantLeft:    "Artist",
			wantRight:   "Song",
			wantTrack:   103,
			wantIsSplit: true,
		},
		{
			name:        "underscores inside segments",
			input:       "Some_Artist - Some_Song.mp3",
			wantLeft:    "Some Artist",
			wantRight:   "Some Song",
			wantIsSplit: true,
		},
		{
			name:        "dangling separator degrades to blob",
			input:       "- Song.mp3",
			wantLeft:    "- Song",
			wantRight:   "- Song",
			wantIsSplit: false,
		},
		{
			name:  "empty after stripping",
			input: "   .mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.input)
			if got.Left != tt.wantLeft || got.Right != tt.wantRight {
				t.Errorf("Filename(%q) segments = (%q, %q), want (%q, %q)",
					tt.input, got.Left, got.Right, tt.wantLeft, tt.wantRight)
			}
			if got.TrackNumber != tt.wantTrack {
				t.Errorf("Filename(%q) track = %d, want %d", tt.input, got.TrackNumber, tt.wantTrack)
			}
			if got.Split() != tt.wantIsSplit {
				t.Errorf("Filename(%q).Split() = %v, want %v", tt.input, got.Split(), tt.wantIsSplit)
			}
		})
	}
}

func TestPlaylistLine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLeft  string
		wantRight string
	}{
		{
			name:      "plain artist song",
			input:     "Daft Punk - Harder Better",
			wantLeft:  "Daft Punk",
			wantRight: "Harder Better",
		},
		{
			name:      "leading digits kept",
			input:     "2 Unlimited - No Limit",
			wantLeft:  "2 Unlimited",
			wantRight: "No Limit",
		},
		{
			name:      "no extension stripping",
			input:     "Moby - Porcelain.mp3",
			wantLeft:  "Moby",
			wantRight: "Porcelain.mp3",
		},
		{
			name:      "no separator keeps blob",
			input:     "Yesterday",
			wantLeft:  "Yesterday",
			wantRight: "Yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaylistLine(tt.input)
			if got.Left != tt.wantLeft || got.Right != tt.wantRight {
				t.Errorf("PlaylistLine(%q) = (%q, %q), want (%q, %q)",
					tt.input, got.Left, got.Right, tt.wantLeft, tt.wantRight)
			}
			if got.TrackNumber != 0 {
				t.Errorf("PlaylistLine(%q) track = %d, want 0", tt.input, got.TrackNumber)
			}
		})
	}
}

func TestPlaylistLineEmpty(t *testing.T) {
	got := PlaylistLine("   ")
	if got.Left != "" || got.Right != "" || got.TrackNumber != 0 {
		t.Errorf("PlaylistLine(blank) = %+v, want zero result", got)
	}
}
