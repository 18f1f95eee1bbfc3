package library

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFiles creates empty files with the given names under dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanner_Scan(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"01 - Artist - Song.mp3",
		"sub/Other Artist - Other Song.flac",
		"notes.txt",
		"cover.jpg",
	)

	scanner := NewScanner([]string{dir}, []string{"mp3", "flac"})
	idx, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	// Entries come back in ascending path order.
	entries := idx.All()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Path >= entries[i].Path {
			t.Errorf("entries not sorted: %q before %q", entries[i-1].Path, entries[i].Path)
		}
	}

	e := idx.ByPath(filepath.Join(dir, "01 - Artist - Song.mp3"))
	if e == nil {
		t.Fatal("ByPath() returned nil for scanned file")
	}
	if e.Artist != "Artist" || e.Song != "Song" || e.TrackNumber != 1 {
		t.Errorf("parsed entry = %+v", e)
	}
}

func TestScanner_Rebuild_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A - B.mp3", "C - D.mp3", "deep/E - F.mp3")

	scanner := NewScanner([]string{dir}, []string{"mp3"})

	first, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var firstPaths, secondPaths []string
	for _, e := range first.All() {
		firstPaths = append(firstPaths, e.Path)
	}
	for _, e := range second.All() {
		secondPaths = append(secondPaths, e.Path)
	}
	if !reflect.DeepEqual(firstPaths, secondPaths) {
		t.Errorf("rebuild changed content:\n%v\n%v", firstPaths, secondPaths)
	}
}

func TestScanner_OverlappingRoots_NoDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A - B.mp3")

	scanner := NewScanner([]string{dir, dir}, []string{"mp3"})
	idx, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (duplicate paths must replace)", idx.Len())
	}
}

func TestScanner_MissingRoot_Warns(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A - B.mp3")

	scanner := NewScanner([]string{dir, filepath.Join(dir, "does-not-exist")}, []string{"mp3"})
	idx, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("missing root must not fail the scan: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
	if len(idx.Warnings()) == 0 {
		t.Error("expected a warning for the missing root")
	}
}

func TestScanner_EmptyResult(t *testing.T) {
	scanner := NewScanner([]string{t.TempDir()}, []string{"mp3"})
	idx, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
}

func TestScanner_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A - B.mp3")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewScanner([]string{dir}, []string{"mp3"})
	if _, err := scanner.Scan(ctx); err == nil {
		t.Error("Scan() with cancelled context should return an error")
	}
}

func TestIndex_Search(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"My Love - Song Title.mp3",
		"Love.mp3",
		"Another - Tune.mp3",
	)

	scanner := NewScanner([]string{dir}, []string{"mp3"})
	idx, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		query     string
		wantFiles []string
	}{
		{
			name:      "all tokens required",
			query:     "love song",
			wantFiles: []string{"My Love - Song Title.mp3"},
		},
		{
			name:      "single token",
			query:     "love",
			wantFiles: []string{"Love.mp3", "My Love - Song Title.mp3"},
		},
		{
			name:      "order insensitive",
			query:     "song love",
			wantFiles: []string{"My Love - Song Title.mp3"},
		},
		{
			name:      "punctuation in query ignored",
			query:     "love, song!",
			wantFiles: []string{"My Love - Song Title.mp3"},
		},
		{
			name:  "no hits",
			query: "zzz",
		},
		{
			name:  "empty query matches nothing",
			query: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range idx.Search(tt.query) {
				got = append(got, e.Filename)
			}
			if !reflect.DeepEqual(got, tt.wantFiles) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.wantFiles)
			}
		})
	}
}

func TestIndex_ByToken(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Artist - Song.mp3", "Artist - Other.mp3", "Nobody - Here.mp3")

	scanner := NewScanner([]string{dir}, []string{"mp3"})
	idx, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got := len(idx.ByToken("artist")); got != 2 {
		t.Errorf("ByToken(artist) = %d entries, want 2", got)
	}
	if got := len(idx.ByToken("missing")); got != 0 {
		t.Errorf("ByToken(missing) = %d entries, want 0", got)
	}
}
