package quizgen

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/shizi/internal/quiz"
)

//go:embed sample_bank.json
var sampleBankJSON []byte

// SampleGenerator serves batches from a built-in word bank. It needs no
// network access.
type SampleGenerator struct {
	bank []quiz.Item

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampleGenerator loads the built-in bank. A nil r uses a random seed.
func NewSampleGenerator(r *rand.Rand) (*SampleGenerator, error) {
	var raw batchOutput
	if err := json.Unmarshal(sampleBankJSON, &raw); err != nil {
		return nil, fmt.Errorf("parse sample bank: %w", err)
	}
	bank := raw.toBatch()
	if len(bank) < quiz.BatchSize {
		return nil, fmt.Errorf("sample bank has %d items, need %d", len(bank), quiz.BatchSize)
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SampleGenerator{bank: bank, rnd: r}, nil
}

// FetchBatch returns quiz.BatchSize distinct items drawn at random.
func (g *SampleGenerator) FetchBatch(ctx context.Context) (quiz.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	idx := g.rnd.Perm(len(g.bank))[:quiz.BatchSize]
	g.mu.Unlock()

	batch := make(quiz.Batch, len(idx))
	for i, j := range idx {
		batch[i] = g.bank[j]
	}
	return batch, nil
}
