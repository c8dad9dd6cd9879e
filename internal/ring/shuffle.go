package ring

import "math/rand"

// Shuffle returns a Fisher-Yates permutation of tiles whose letters read
// differently from the input. Orderings that cannot change, because there are
// fewer than two tiles or every letter is the same, are returned as a copy.
func Shuffle(tiles []*Tile, rng *rand.Rand) []*Tile {
	shuffled := make([]*Tile, len(tiles))
	copy(shuffled, tiles)
	if !canChange(tiles) {
		return shuffled
	}

	original := concat(tiles)
	for {
		for i := len(shuffled) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		if concat(shuffled) != original {
			return shuffled
		}
	}
}

// Shuffle reorders the ring and reports whether the order changed.
func (r *Ring) Shuffle(rng *rand.Rand) bool {
	before := r.Order()
	r.Reorder(Shuffle(r.tiles, rng))
	return r.Order() != before
}

func canChange(tiles []*Tile) bool {
	for _, t := range tiles[min(1, len(tiles)):] {
		if t.Char != tiles[0].Char {
			return true
		}
	}
	return false
}

func concat(tiles []*Tile) string {
	b := make([]rune, len(tiles))
	for i, t := range tiles {
		b[i] = t.Char
	}
	return string(b)
}
