package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/model"
)

// Load reads a plain text playlist file into entries.
func Load(path string) ([]*model.PlaylistEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads playlist entries from r, one per line. Blank lines are
// skipped; every other line yields an entry, malformed or not — a line
// that cannot be split still matches via the whole-string fallback.
func Parse(r io.Reader) ([]*model.PlaylistEntry, error) {
	var entries []*model.PlaylistEntry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, model.NewPlaylistEntry(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
