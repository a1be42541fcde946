package drill

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Generate returns every fact of r in row-major order: all of row From
// (×1 through ×9) before row From+1.
func Generate(r Range) []Question {
	qs := make([]Question, 0, r.Size())
	for a := r.From; a <= r.To; a++ {
		for b := 1; b <= MaxDan; b++ {
			qs = append(qs, Question{Multiplicand: a, Multiplier: b})
		}
	}
	return qs
}

// Shuffle permutes qs in place (Fisher-Yates). Every permutation is
// equally likely given a uniform rng.
func Shuffle(qs []Question, rng *rand.Rand) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}

// Generator produces shuffled question sets from a single random source.
type Generator struct {
	seed uint64
	rng  *rand.Rand
}

// NewGenerator creates a Generator. A zero seed draws one from crypto/rand.
func NewGenerator(seed uint64) (*Generator, error) {
	if seed == 0 {
		s, err := newSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Shuffled returns the facts of r in random order.
func (g *Generator) Shuffled(r Range) []Question {
	qs := Generate(r)
	Shuffle(qs, g.rng)
	return qs
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	s := binary.LittleEndian.Uint64(b[:])
	if s == 0 {
		s = 1
	}
	return s, nil
}
