package match

import (
	"context"
	"runtime"
	"sort"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/library"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/model"
	"golang.org/x/sync/errgroup"
)

// Strategy identifies which comparison produced a candidate's score.
type Strategy int

const (
	// StrategyNone means no comparison took place (empty library).
	StrategyNone Strategy = iota

	// StrategyArtistSong compared playlist segments to entry segments
	// in their original orientation.
	StrategyArtistSong

	// StrategySongArtist compared the swapped orientation.
	StrategySongArtist

	// StrategyFullText compared the raw playlist line against the
	// entry's filename stem.
	StrategyFullText
)

// String returns a diagnostic label for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyArtistSong:
		return "artist-song"
	case StrategySongArtist:
		return "song-artist"
	case StrategyFullText:
		return "full-text"
	default:
		return "none"
	}
}

// Candidate is the best-scoring pairing found for one playlist entry.
//
// Entry is nil when the library was empty. Scores are pure functions of
// the pair: recomputing a candidate for the same inputs always yields
// the same value.
type Candidate struct {
	Playlist *model.PlaylistEntry
	Entry    *model.MusicEntry
	Score    float64
	Strategy Strategy
}

// ResultSet is the outcome of one matching pass.
//
// It retains the best candidate for every playlist entry, matched or
// not, so a new threshold can re-partition the set without re-running
// the playlist-times-library comparison.
type ResultSet struct {
	// Threshold is the similarity cutoff this set was produced with.
	Threshold float64

	candidates []Candidate
}

// All returns every candidate in playlist order, including those below
// the threshold.
func (rs *ResultSet) All() []Candidate {
	return rs.candidates
}

// Matched returns the candidates meeting the threshold, ordered by
// descending score; equal scores order by ascending entry path.
func (rs *ResultSet) Matched() []Candidate {
	var matched []Candidate
	for _, c := range rs.candidates {
		if c.Entry != nil && c.Score >= rs.Threshold {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].Entry.Path < matched[j].Entry.Path
	})
	return matched
}

// Unmatched returns the candidates below the threshold, in playlist
// order. They are reported, never silently dropped.
func (rs *ResultSet) Unmatched() []Candidate {
	var unmatched []Candidate
	for _, c := range rs.candidates {
		if c.Entry == nil || c.Score < rs.Threshold {
			unmatched = append(unmatched, c)
		}
	}
	return unmatched
}

// Rescale re-partitions the retained candidates under a new threshold.
// No scores are recomputed and no files are re-read.
func (rs *ResultSet) Rescale(threshold float64) *ResultSet {
	return &ResultSet{Threshold: threshold, candidates: rs.candidates}
}

// ScoreFunc computes a normalized string similarity in [0, 1].
type ScoreFunc func(a, b string) float64

// Matcher reconciles playlist entries against a library index.
type Matcher struct {
	score ScoreFunc
	limit int
}

// NewMatcher creates a Matcher using the package Score function. A
// custom ScoreFunc can be supplied for tests; nil means the default.
func NewMatcher(score ScoreFunc) *Matcher {
	if score == nil {
		score = Score
	}
	return &Matcher{score: score, limit: runtime.NumCPU()}
}

// Match finds the best-scoring library entry for every playlist entry.
//
// Candidates are pre-filtered through the index's inverted word index;
// when pruning finds nothing, or the pruned best misses the threshold,
// the entry is scored against the full library so pruning can only
// speed things up, never change the outcome. Exactly equal top scores
// break toward the lexicographically smaller path. An empty library
// yields an all-unmatched result, not an error.
//
// Playlist entries are scored concurrently; cancellation is checked per
// entry and aborts the pass, discarding partial results.
func (m *Matcher) Match(ctx context.Context, playlist []*model.PlaylistEntry, idx *library.Index, threshold float64) (*ResultSet, error) {
	candidates := make([]Candidate, len(playlist))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.limit)
	for i, entry := range playlist {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidates[i] = m.bestFor(entry, idx, threshold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ResultSet{Threshold: threshold, candidates: candidates}, nil
}

// bestFor returns the best candidate for one playlist entry.
func (m *Matcher) bestFor(entry *model.PlaylistEntry, idx *library.Index, threshold float64) Candidate {
	pool := m.prune(entry, idx)
	best := m.bestIn(entry, pool)

	// Pruning is a speed optimization only: if the pruned pool was
	// partial and did not produce an acceptable match, fall back to the
	// whole library to rule out a false negative.
	if len(pool) < idx.Len() && (best.Entry == nil || best.Score < threshold) {
		best = m.bestIn(entry, idx.All())
	}
	return best
}

// prune returns the entries sharing at least one word with the playlist
// entry's parsed segments (or raw text), in ascending path order.
func (m *Matcher) prune(entry *model.PlaylistEntry, idx *library.Index) []*model.MusicEntry {
	query := entry.Raw
	if entry.Parsed() {
		query = entry.Artist + " " + entry.Song
	}

	seen := make(map[string]*model.MusicEntry)
	for _, tok := range library.Tokenize(query) {
		for _, e := range idx.ByToken(tok) {
			seen[e.Path] = e
		}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	pool := make([]*model.MusicEntry, len(paths))
	for i, path := range paths {
		pool[i] = seen[path]
	}
	return pool
}

// bestIn scores the playlist entry against every entry of pool and
// keeps the highest. Pool must be in ascending path order; ties keep
// the first, which is the lexicographically smaller path.
func (m *Matcher) bestIn(entry *model.PlaylistEntry, pool []*model.MusicEntry) Candidate {
	best := Candidate{Playlist: entry}
	for _, e := range pool {
		score, strategy := m.scorePair(entry, e)
		if best.Entry == nil || score > best.Score {
			best = Candidate{Playlist: entry, Entry: e, Score: score, Strategy: strategy}
		}
	}
	return best
}

// scorePair computes the composite score for one pairing: the maximum
// over both orientation hypotheses and the whole-string fallback.
func (m *Matcher) scorePair(p *model.PlaylistEntry, e *model.MusicEntry) (float64, Strategy) {
	score := m.score(p.Raw, e.Stem())
	strategy := StrategyFullText

	if p.Parsed() && e.Parsed() {
		direct := (m.score(p.Artist, e.Artist) + m.score(p.Song, e.Song)) / 2
		if direct > score {
			score, strategy = direct, StrategyArtistSong
		}
		swapped := (m.score(p.Artist, e.Song) + m.score(p.Song, e.Artist)) / 2
		if swapped > score {
			score, strategy = swapped, StrategySongArtist
		}
	}
	return score, strategy
}
