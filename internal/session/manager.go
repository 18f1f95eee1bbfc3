package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/config"
	ioutils "github.com/TestProjects-Sigma/music-playlist-manager/internal/io"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/library"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/match"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/model"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/playlist"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update from a session operation.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Errors reported by session operations when called out of order.
var (
	ErrNoLibrary  = errors.New("library has not been scanned")
	ErrNoPlaylist = errors.New("no playlist loaded")
	ErrNoResult   = errors.New("no match result to rescale")
)

// Manager coordinates one reconciliation session.
type Manager struct {
	settings *config.Settings
	matcher  *match.Matcher

	mu      sync.RWMutex
	index   *library.Index
	entries []*model.PlaylistEntry
	result  *match.ResultSet

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager around the given settings. onProgress
// may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		matcher:    match.NewMatcher(nil),
		onProgress: onProgress,
	}
}

// Settings returns the session's settings for the host to adjust.
func (m *Manager) Settings() *config.Settings {
	return m.settings
}

// Index returns the current library snapshot, nil before the first
// successful scan.
func (m *Manager) Index() *library.Index {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index
}

// Playlist returns the currently loaded playlist entries.
func (m *Manager) Playlist() []*model.PlaylistEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries
}

// Result returns the last match result, nil before the first match.
func (m *Manager) Result() *match.ResultSet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result
}

// Scan walks the configured directories and swaps in a fresh library
// snapshot. On error or cancellation the previous snapshot stays.
func (m *Manager) Scan(ctx context.Context) (*library.Index, error) {
	if len(m.settings.Directories) == 0 {
		return nil, errors.New("no directories configured")
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Scanning %d directories...", len(m.settings.Directories)), Level: LevelInfo})

	scanner := library.NewScanner(m.settings.Directories, m.settings.Extensions)
	if m.settings.ReadTags {
		scanner.UseTags(library.NewID3Reader())
	}

	idx, err := scanner.Scan(ctx)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Scan aborted: %v", err), Level: LevelError})
		return nil, err
	}

	for _, w := range idx.Warnings() {
		m.progress(ProgressEvent{Message: w, Level: LevelWarning})
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Scan complete, %d files indexed", idx.Len()), Level: LevelSuccess})

	m.mu.Lock()
	m.index = idx
	m.result = nil // scores refer to the old snapshot
	m.mu.Unlock()

	return idx, nil
}

// LoadPlaylist reads a plain text playlist file and remembers it as the
// session playlist. Returns the number of entries loaded.
func (m *Manager) LoadPlaylist(path string) (int, error) {
	entries, err := playlist.Load(path)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	m.entries = entries
	m.result = nil
	m.mu.Unlock()

	m.settings.LastPlaylistFile = path
	m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d playlist entries from %s", len(entries), filepath.Base(path)), Level: LevelInfo})
	return len(entries), nil
}

// LoadPlaylistText parses playlist entries typed or pasted by the user.
func (m *Manager) LoadPlaylistText(text string) int {
	entries, _ := playlist.Parse(strings.NewReader(text))

	m.mu.Lock()
	m.entries = entries
	m.result = nil
	m.mu.Unlock()

	return len(entries)
}

// Match reconciles the loaded playlist against the current library
// snapshot with the configured threshold, retaining the result for
// cheap re-scoring.
func (m *Manager) Match(ctx context.Context) (*match.ResultSet, error) {
	m.mu.RLock()
	idx, entries := m.index, m.entries
	m.mu.RUnlock()

	if idx == nil {
		return nil, ErrNoLibrary
	}
	if len(entries) == 0 {
		return nil, ErrNoPlaylist
	}

	result, err := m.matcher.Match(ctx, entries, idx, m.settings.Threshold)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Matching aborted: %v", err), Level: LevelError})
		return nil, err
	}

	m.mu.Lock()
	m.result = result
	m.mu.Unlock()

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Matched %d of %d entries at threshold %.0f%%", len(result.Matched()), len(entries), m.settings.Threshold*100),
		Level:   LevelSuccess,
	})
	return result, nil
}

// Rescale re-partitions the last result under a new threshold without
// re-running the comparison, and makes the new threshold current.
func (m *Manager) Rescale(threshold float64) (*match.ResultSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.result == nil {
		return nil, ErrNoResult
	}

	m.result = m.result.Rescale(threshold)
	m.settings.Threshold = threshold
	return m.result, nil
}

// Search runs a word-match query against the current library snapshot.
func (m *Manager) Search(query string) ([]*model.MusicEntry, error) {
	m.mu.RLock()
	idx := m.index
	m.mu.RUnlock()

	if idx == nil {
		return nil, ErrNoLibrary
	}
	return idx.Search(query), nil
}

// CopySelected copies the files of the given candidates into outputDir,
// never clobbering existing files. Per-file failures are warnings; the
// returned counts tell the host how it went. An exported playlist of
// the copied set is written when enabled in settings.
func (m *Manager) CopySelected(ctx context.Context, candidates []match.Candidate, outputDir string) (copied, failed int, err error) {
	if outputDir == "" {
		return 0, 0, errors.New("output directory not specified")
	}
	if err := ioutils.EnsureDir(outputDir); err != nil {
		return 0, 0, fmt.Errorf("create output directory: %w", err)
	}

	var copiedCount, failedCount atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, c := range candidates {
		if c.Entry == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst, err := ioutils.CopyFileUnique(ctx, c.Entry.Path, outputDir)
			if err != nil {
				failedCount.Add(1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to copy %s: %v", c.Entry.Filename, err), Level: LevelWarning})
				return nil // keep copying the rest
			}
			copiedCount.Add(1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Copied %s", filepath.Base(dst)), Level: LevelVerbose})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(copiedCount.Load()), int(failedCount.Load()), err
	}

	if m.settings.ExportPlaylist {
		if path, err := m.ExportPlaylist(candidates, outputDir); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to write playlist: %v", err), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote playlist %s", filepath.Base(path)), Level: LevelSuccess})
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Copy complete: %d copied, %d failed", copiedCount.Load(), failedCount.Load()), Level: LevelSuccess})
	return int(copiedCount.Load()), int(failedCount.Load()), nil
}

// ExportPlaylist writes the given candidates as a playlist file in the
// configured format, named after the loaded playlist, into dir. It
// returns the path written.
func (m *Manager) ExportPlaylist(candidates []match.Candidate, dir string) (string, error) {
	format := playlist.ParseFormat(m.settings.PlaylistFormat)
	writer := playlist.NewWriter(format, m.settings.M3UExtended)

	name := "matches"
	if m.settings.LastPlaylistFile != "" {
		base := filepath.Base(m.settings.LastPlaylistFile)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	name = ioutils.SanitizeFileName(name) + format.Extension()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(writer.Render(candidates)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
