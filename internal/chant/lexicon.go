// Package chant derives the traditional kuku (九九) chant readings for a
// multiplication fact, and the everyday readings used for answers.
package chant

import "fmt"

// Particle is the connective sound recited between the factors of some facts.
const Particle = "が"

// leftOne is how 1 is read when it is the multiplicand ("いんいちがいち").
const leftOne = "いん"

// digitNames are the chant names for 1-9. 4 is "し", not "よん".
var digitNames = [10]string{"", "いち", "に", "さん", "し", "ご", "ろく", "しち", "はち", "く"}

// rightOverrides replace the multiplier's reading for specific pairs,
// indexed [multiplicand][multiplier].
var rightOverrides = [10][10]string{
	2: {2: "にん"},
	3: {3: "ざん", 8: "ぱ"},
	4: {8: "は"},
	5: {8: "は"},
	6: {8: "は"},
	7: {8: "は"},
	8: {8: "ぱ"},
	9: {8: "は"},
}

// leftOverrides replace the multiplicand's reading for specific pairs.
var leftOverrides = [10][10]string{
	3: {3: "さ", 6: "さぶ"},
	5: {9: "ごっ"},
	6: {9: "ろっ"},
	8: {8: "はっ", 9: "はっ"},
}

// particlePairs are the facts outside the 1 row and 1 column that take が.
var particlePairs = [10][10]bool{
	2: {2: true, 3: true, 4: true},
	3: {2: true, 3: true},
	4: {2: true},
}

// LeftReading returns the chant reading of the multiplicand a in the fact a×b.
func LeftReading(a, b int) string {
	mustFactor(a)
	mustFactor(b)
	if r := leftOverrides[a][b]; r != "" {
		return r
	}
	if a == 1 {
		return leftOne
	}
	return digitNames[a]
}

// RightReading returns the chant reading of the multiplier b in the fact a×b.
func RightReading(a, b int) string {
	mustFactor(a)
	mustFactor(b)
	if r := rightOverrides[a][b]; r != "" {
		return r
	}
	return digitNames[b]
}

// NeedsParticle reports whether が is recited after the factors of a×b.
func NeedsParticle(a, b int) bool {
	mustFactor(a)
	mustFactor(b)
	return a == 1 || b == 1 || particlePairs[a][b]
}

// Chant returns the recited factor part of a×b, e.g. "ににんが" or "くく".
func Chant(a, b int) string {
	line := LeftReading(a, b) + RightReading(a, b)
	if NeedsParticle(a, b) {
		line += Particle
	}
	return line
}

func mustFactor(n int) {
	if n < 1 || n > 9 {
		panic(fmt.Sprintf("chant: factor %d out of range [1,9]", n))
	}
}
