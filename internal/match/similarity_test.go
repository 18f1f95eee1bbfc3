package match

import (
	"math"
	"testing"
)

func TestScore_Reflexive(t *testing.T) {
	for _, s := range []string{"a", "abc", "Daft Punk", "Around the World", "éclair au café"} {
		if got := Score(s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"Daft Punk", "Punk Daft"},
		{"My Love", "Love Song Title"},
		{"short", "a much longer string entirely"},
		{"", "nonempty"},
	}
	for _, p := range pairs {
		ab, ba := Score(p[0], p[1]), Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	if got := Score("DAFT PUNK", "daft punk"); got != 1.0 {
		t.Errorf("Score should ignore case, got %v", got)
	}
}

func TestScore_Ordering(t *testing.T) {
	close := Score("abc", "abd")
	far := Score("abc", "xyz")
	if far >= close {
		t.Errorf("Score(abc, xyz) = %v should be below Score(abc, abd) = %v", far, close)
	}
	if far != 0 {
		t.Errorf("Score(abc, xyz) = %v, want 0", far)
	}
}

func TestScore_Ratio(t *testing.T) {
	// Two matched chars out of six total: 2*2/6.
	if got, want := Score("abc", "abd"), 2.0*2.0/6.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Score(abc, abd) = %v, want %v", got, want)
	}
}

func TestScore_Range(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"a", ""},
		{"The Beatles - Yesterday", "yesterday the beatles"},
		{"01 Artist Song", "completely unrelated"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestScore_BothEmpty(t *testing.T) {
	if got := Score("", ""); got != 1.0 {
		t.Errorf("Score of two empty strings = %v, want 1.0", got)
	}
}

func TestScore_ToleratesSeparatorNoise(t *testing.T) {
	got := Score("Artist - Song", "Artist Song")
	if got < 0.9 {
		t.Errorf("Score with separator noise = %v, want >= 0.9", got)
	}
}
