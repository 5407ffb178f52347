package quiz

import "math/rand/v2"

// ShuffleOptions returns the correct answer and the distractors in a random
// order. The inputs are not modified.
func ShuffleOptions(correct string, distractors []string) []string {
	return shuffleWith(rand.Shuffle, correct, distractors)
}

// ShuffleOptionsRand is ShuffleOptions driven by r, for reproducible orders.
func ShuffleOptionsRand(r *rand.Rand, correct string, distractors []string) []string {
	return shuffleWith(r.Shuffle, correct, distractors)
}

func shuffleWith(shuffle func(n int, swap func(i, j int)), correct string, distractors []string) []string {
	opts := make([]string, 0, len(distractors)+1)
	opts = append(opts, correct)
	opts = append(opts, distractors...)
	shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
