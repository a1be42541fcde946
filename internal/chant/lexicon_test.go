package chant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRightReading_Overrides(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{2, 2, "にん"},
		{3, 8, "ぱ"},
		{4, 8, "は"},
		{5, 8, "は"},
		{6, 8, "は"},
		{7, 8, "は"},
		{9, 8, "は"},
		{8, 8, "ぱ"},
		{3, 3, "ざん"},
	}
	for _, tt := range tests {
		if got := RightReading(tt.a, tt.b); got != tt.want {
			t.Errorf("RightReading(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLeftReading_Overrides(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{3, 3, "さ"},
		{3, 6, "さぶ"},
		{5, 9, "ごっ"},
		{6, 9, "ろっ"},
		{8, 8, "はっ"},
		{8, 9, "はっ"},
	}
	for _, tt := range tests {
		if got := LeftReading(tt.a, tt.b); got != tt.want {
			t.Errorf("LeftReading(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLeftReading_One(t *testing.T) {
	for b := 1; b <= 9; b++ {
		assert.Equal(t, "いん", LeftReading(1, b), "1×%d", b)
	}
	// On the right, 1 keeps its digit name.
	assert.Equal(t, "いち", RightReading(5, 1))
}

func TestReadings_DigitNames(t *testing.T) {
	want := []string{"いち", "に", "さん", "し", "ご", "ろく", "しち", "はち", "く"}
	for i, name := range want {
		n := i + 1
		assert.Equal(t, name, RightReading(1, n), "right reading of %d", n)
		if n > 1 {
			assert.Equal(t, name, LeftReading(n, 7), "left reading of %d", n)
		}
	}
	// 8 reads は on the right of the 7 row, but 7 keeps its name.
	assert.Equal(t, "は", RightReading(7, 8))
	assert.Equal(t, "しち", RightReading(8, 7))
}

func TestReadings_TotalOverRange(t *testing.T) {
	for a := 1; a <= 9; a++ {
		for b := 1; b <= 9; b++ {
			assert.NotEmpty(t, LeftReading(a, b))
			assert.NotEmpty(t, RightReading(a, b))
		}
	}
}

func TestNeedsParticle(t *testing.T) {
	exceptions := map[[2]int]bool{
		{2, 2}: true, {2, 3}: true, {2, 4}: true,
		{3, 2}: true, {3, 3}: true, {4, 2}: true,
	}
	for a := 1; a <= 9; a++ {
		for b := 1; b <= 9; b++ {
			want := a == 1 || b == 1 || exceptions[[2]int{a, b}]
			if got := NeedsParticle(a, b); got != want {
				t.Errorf("NeedsParticle(%d, %d) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestChant(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{1, 1, "いんいちが"},
		{2, 2, "ににんが"},
		{3, 3, "さざんが"},
		{3, 6, "さぶろく"},
		{8, 8, "はっぱ"},
		{9, 9, "くく"},
		{4, 1, "しいちが"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Chant(tt.a, tt.b))
	}
}

func TestReadings_PanicOutOfRange(t *testing.T) {
	assert.Panics(t, func() { LeftReading(0, 1) })
	assert.Panics(t, func() { RightReading(1, 10) })
	assert.Panics(t, func() { NeedsParticle(10, 1) })
}
