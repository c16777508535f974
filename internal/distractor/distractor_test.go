package distractor

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestBuildFullPool(t *testing.T) {
	pool := []string{"Katze", "Vogel", "Fisch", "Maus"}
	for seed := uint64(0); seed < 30; seed++ {
		r := rand.New(rand.NewPCG(seed, 1))
		got := Build(r, "Hund", pool)
		if len(got) != Size {
			t.Fatalf("len = %d, want %d", len(got), Size)
		}
		count := 0
		seen := map[string]bool{}
		for _, c := range got {
			if seen[c] {
				t.Fatalf("duplicate choice %q in %v", c, got)
			}
			seen[c] = true
			if c == "Hund" {
				count++
				continue
			}
			if !slices.Contains(pool, c) {
				t.Fatalf("choice %q not from pool", c)
			}
		}
		if count != 1 {
			t.Fatalf("correct answer appears %d times", count)
		}
	}
}

func TestBuildSmallPools(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		name string
		pool []string
		want int
	}{
		{"empty", nil, 1},
		{"only correct", []string{"Hund", "Hund"}, 1},
		{"one alternative", []string{"Hund", "Katze"}, 2},
		{"duplicates collapse", []string{"Katze", "Katze", "Maus"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(r, "Hund", tt.pool)
			if len(got) != tt.want {
				t.Errorf("Build = %v, want %d entries", got, tt.want)
			}
			if IndexOf(got, "Hund") < 0 {
				t.Errorf("correct answer missing from %v", got)
			}
		})
	}
}

func TestBuildShufflesCorrectPosition(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	positions := map[int]bool{}
	for i := 0; i < 200; i++ {
		got := Build(r, "Hund", []string{"Katze", "Vogel", "Fisch"})
		positions[IndexOf(got, "Hund")] = true
	}
	if len(positions) != Size {
		t.Errorf("correct answer seen at positions %v, want all %d", positions, Size)
	}
}
