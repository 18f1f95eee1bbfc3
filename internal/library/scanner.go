package library

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/model"
	"golang.org/x/sync/errgroup"
)

// TagReader extracts artist/title metadata from an audio file. When a
// reader is attached to a Scanner, tag-derived values override the
// filename-parsed guess before indexing.
type TagReader interface {
	// Read returns the artist and title tags of the file at path.
	// Empty strings mean the tag is absent.
	Read(path string) (artist, title string, err error)
}

// Scanner walks directory roots and builds a library Index.
//
// Scans are idempotent: the index is fully re-derived from disk state on
// every run, never patched incrementally. A Scanner is safe to reuse;
// each Scan returns a fresh snapshot.
type Scanner struct {
	roots      []string
	extensions map[string]struct{}
	tags       TagReader
}

// NewScanner creates a Scanner for the given roots and accepted
// extensions (lowercase, without dots, e.g. "mp3").
func NewScanner(roots, extensions []string) *Scanner {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &Scanner{roots: roots, extensions: exts}
}

// UseTags attaches a TagReader whose artist/title values override the
// filename-parsed segments when both are present.
func (s *Scanner) UseTags(r TagReader) {
	s.tags = r
}

// Scan walks all roots and returns the resulting Index.
//
// Roots are walked concurrently. Unreadable directories or entries are
// recorded as warnings on the index, not errors; a root that does not
// exist is likewise just a warning. Zero matched files is a valid empty
// index. Cancelling the context aborts the walk promptly and discards
// the partial result.
func (s *Scanner) Scan(ctx context.Context) (*Index, error) {
	var (
		mu       sync.Mutex
		entries  []*model.MusicEntry
		warnings []string
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, root := range s.roots {
		g.Go(func() error {
			found, warns, err := s.scanRoot(ctx, root)
			if err != nil {
				return err
			}
			mu.Lock()
			entries = append(entries, found...)
			warnings = append(warnings, warns...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Overlapping roots can surface the same file twice; the last
	// occurrence wins so the index holds one entry per path.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	deduped := entries[:0]
	for i, e := range entries {
		if i+1 < len(entries) && entries[i+1].Path == e.Path {
			continue
		}
		deduped = append(deduped, e)
	}

	sort.Strings(warnings)
	return NewIndex(deduped, warnings), nil
}

// scanRoot walks a single root directory.
func (s *Scanner) scanRoot(ctx context.Context, root string) ([]*model.MusicEntry, []string, error) {
	var (
		entries  []*model.MusicEntry
		warnings []string
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := s.extensions[ext]; !ok {
			return nil
		}

		entry := model.NewMusicEntry(path)
		s.applyTags(entry)
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return entries, warnings, nil
}

// applyTags overrides the filename-parsed segments with tag metadata
// when the reader yields both an artist and a title. Tag failures are
// ignored; the filename guess stands.
func (s *Scanner) applyTags(entry *model.MusicEntry) {
	if s.tags == nil {
		return
	}
	artist, title, err := s.tags.Read(entry.Path)
	if err != nil || artist == "" || title == "" {
		return
	}
	entry.Artist = artist
	entry.Song = title
}
