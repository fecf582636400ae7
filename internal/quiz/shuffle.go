package quiz

import (
	"math/rand/v2"
)

// Shuffler permutes questions in place.
type Shuffler func(qs []Question)

// UniformShuffler returns a Fisher-Yates shuffler backed by the global source.
func UniformShuffler() Shuffler {
	return func(qs []Question) {
		rand.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}
}

// SeededShuffler returns a Fisher-Yates shuffler with a reproducible sequence.
func SeededShuffler(seed uint64) Shuffler {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(qs []Question) {
		r.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}
}

// NoShuffle leaves the order untouched.
func NoShuffle(qs []Question) {}
