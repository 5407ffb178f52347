package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleOptionsIsPermutation(t *testing.T) {
	wrong := []string{"sān", "shàn", "shēn"}
	for range 200 {
		opts := ShuffleOptions("shān", wrong)
		require.Len(t, opts, 4)
		assert.ElementsMatch(t, []string{"shān", "sān", "shàn", "shēn"}, opts)
	}
	assert.Equal(t, []string{"sān", "shàn", "shēn"}, wrong, "input must not be modified")
}

func TestShuffleOptionsVariesPosition(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	positions := map[int]bool{}
	for range 200 {
		opts := ShuffleOptionsRand(r, "A", []string{"B", "C", "D"})
		for i, o := range opts {
			if o == "A" {
				positions[i] = true
			}
		}
	}
	assert.Len(t, positions, 4, "correct answer should land in every slot")
}

func TestShuffleOptionsRandDeterministic(t *testing.T) {
	a := ShuffleOptionsRand(rand.New(rand.NewPCG(7, 7)), "A", []string{"B", "C", "D"})
	b := ShuffleOptionsRand(rand.New(rand.NewPCG(7, 7)), "A", []string{"B", "C", "D"})
	assert.Equal(t, a, b)
}
