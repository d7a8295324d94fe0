package entropy

import "math"

// Ownership returns the normalized Shannon entropy of how a file's surviving lines
// are distributed across owners (authors or commits).
// Returns a value between 0 and 1:
//   - 0 = a single owner holds every line
//   - 1 = lines are spread evenly across owners
//
// Owners with zero lines are ignored.
func Ownership(linesByOwner map[string]int) float64 {
	total := 0
	owners := 0
	for _, n := range linesByOwner {
		if n > 0 {
			total += n
			owners++
		}
	}
	if owners < 2 {
		return 0.0
	}

	// Shannon entropy: -Σ(p_i × log2(p_i))
	h := 0.0
	for _, n := range linesByOwner {
		if n > 0 {
			p := float64(n) / float64(total)
			h -= p * math.Log2(p)
		}
	}

	normalized := h / math.Log2(float64(owners))
	if normalized < 0 {
		return 0.0
	}
	if normalized > 1 {
		return 1.0
	}
	return normalized
}

// TopOwner returns the owner holding the most lines and its share of all lines.
// Ties go to the lexically smallest owner.
func TopOwner(linesByOwner map[string]int) (string, float64) {
	var (
		top   string
		most  int
		total int
	)
	for owner, n := range linesByOwner {
		if n <= 0 {
			continue
		}
		total += n
		if n > most || (n == most && owner < top) {
			top, most = owner, n
		}
	}
	if total == 0 {
		return "", 0.0
	}
	return top, float64(most) / float64(total)
}
