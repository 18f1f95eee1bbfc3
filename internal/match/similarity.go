package match

import "strings"

// Score returns the similarity of a and b in [0, 1].
//
// The value is the Ratcliff/Obershelp ratio: 2*M/T where M is the total
// length of all matching blocks and T the combined length of both
// strings. Guarantees: Score(a, a) == 1, Score(a, b) == Score(b, a),
// comparison is case-insensitive. Two empty strings score 1.
func Score(a, b string) float64 {
	// Canonicalize argument order so tie-breaking inside the block
	// search cannot make the result asymmetric.
	x := []rune(strings.ToLower(a))
	y := []rune(strings.ToLower(b))
	if string(x) > string(y) {
		x, y = y, x
	}

	total := len(x) + len(y)
	if total == 0 {
		return 1
	}

	matched := matchingBlocks(x, y, 0, len(x), 0, len(y))
	return 2 * float64(matched) / float64(total)
}

// matchingBlocks returns the total length of matching blocks between
// x[xlo:xhi] and y[ylo:yhi]: the longest common block, plus recursively
// the blocks to its left and right.
func matchingBlocks(x, y []rune, xlo, xhi, ylo, yhi int) int {
	bestX, bestY, bestLen := longestMatch(x, y, xlo, xhi, ylo, yhi)
	if bestLen == 0 {
		return 0
	}

	total := bestLen
	total += matchingBlocks(x, y, xlo, bestX, ylo, bestY)
	total += matchingBlocks(x, y, bestX+bestLen, xhi, bestY+bestLen, yhi)
	return total
}

// longestMatch finds the longest block x[i:i+k] == y[j:j+k] with
// xlo <= i < i+k <= xhi and ylo <= j < j+k <= yhi. Ties go to the
// earliest block in x, then in y.
func longestMatch(x, y []rune, xlo, xhi, ylo, yhi int) (bestX, bestY, bestLen int) {
	// Positions of each rune within y[ylo:yhi].
	positions := make(map[rune][]int)
	for j := ylo; j < yhi; j++ {
		positions[y[j]] = append(positions[y[j]], j)
	}

	bestX, bestY = xlo, ylo

	// lengths[j] is the length of the longest block ending at x[i], y[j].
	lengths := make(map[int]int)
	for i := xlo; i < xhi; i++ {
		next := make(map[int]int)
		for _, j := range positions[x[i]] {
			k := lengths[j-1] + 1
			next[j] = k
			if k > bestLen {
				bestX, bestY, bestLen = i-k+1, j-k+1, k
			}
		}
		lengths = next
	}

	return bestX, bestY, bestLen
}
