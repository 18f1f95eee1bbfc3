// Package match scores playlist entries against indexed music files and
// produces ranked, threshold-filtered result sets.
//
// # Similarity
//
// Score computes a normalized similarity in [0, 1] between two strings
// using the Ratcliff/Obershelp matching-blocks ratio (the classic
// sequence-matcher "ratio"): twice the number of matched characters
// divided by the total length of both strings. It is case-insensitive,
// symmetric and reflexive, and tolerates reordering artifacts, missing
// punctuation and minor spelling variance without phonetic analysis.
//
// # Composite scoring
//
// A playlist entry and a music entry are compared under three
// strategies: artist↔artist/song↔song, the swapped orientation, and a
// whole-string fallback of raw line against filename stem. The highest
// of the three wins and is recorded on the candidate, which tolerates
// both unknown "Artist - Song" orientation and badly parsed fields.
//
// # Matching
//
//	matcher := match.NewMatcher()
//	result, err := matcher.Match(ctx, playlist, index, 0.7)
//	better := result.Rescale(0.5) // re-partition, no re-scoring
//
// Rescale reuses the scores retained from the initial pass, so moving
// the threshold is cheap enough for interactive use.
package match
