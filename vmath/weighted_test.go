package vmath

import (
	"testing"
)

// TestPickWeightedRatio verifies draw frequency tracks the weights
func TestPickWeightedRatio(t *testing.T) {
	rng := NewFastRand(42)
	items := []Weighted[string]{
		{Item: "heavy", Weight: 3},
		{Item: "light", Weight: 1},
	}

	counts := map[string]int{}
	draws := 10000
	for i := 0; i < draws; i++ {
		v, err := PickWeighted(rng, items)
		if err != nil {
			t.Fatalf("PickWeighted failed: %v", err)
		}
		counts[v]++
	}

	// Expect roughly 3:1; allow generous slack for RNG noise
	heavy := float64(counts["heavy"]) / float64(draws)
	if heavy < 0.70 || heavy > 0.80 {
		t.Errorf("Expected heavy share near 0.75, got %.3f (heavy=%d light=%d)",
			heavy, counts["heavy"], counts["light"])
	}
}

// TestPickWeightedEmpty verifies the empty list error
func TestPickWeightedEmpty(t *testing.T) {
	rng := NewFastRand(1)
	_, err := PickWeighted[string](rng, nil)
	if err != ErrEmptySelection {
		t.Errorf("Expected ErrEmptySelection, got %v", err)
	}
}

// TestPickWeightedZeroTotal verifies the first-item fallback when all
// weights are zero or negative
func TestPickWeightedZeroTotal(t *testing.T) {
	rng := NewFastRand(1)
	items := []Weighted[int]{
		{Item: 7, Weight: 0},
		{Item: 9, Weight: -5},
	}
	for i := 0; i < 100; i++ {
		v, err := PickWeighted(rng, items)
		if err != nil {
			t.Fatalf("PickWeighted failed: %v", err)
		}
		if v != 7 {
			t.Fatalf("Expected fallback to first item 7, got %d", v)
		}
	}
}

// TestPickWeightedSingle verifies a single item always wins
func TestPickWeightedSingle(t *testing.T) {
	rng := NewFastRand(3)
	items := []Weighted[string]{{Item: "only", Weight: 2}}
	for i := 0; i < 10; i++ {
		v, err := PickWeighted(rng, items)
		if err != nil || v != "only" {
			t.Fatalf("Expected only, got %q err=%v", v, err)
		}
	}
}

// TestPickWeightedNAll verifies all items return in input order when the
// pool is not larger than n
func TestPickWeightedNAll(t *testing.T) {
	rng := NewFastRand(5)
	items := []Weighted[string]{
		{Item: "a", Weight: 1},
		{Item: "b", Weight: 10},
	}
	out := PickWeightedN(rng, items, 3)
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("Expected [a b], got %v", out)
	}
}

// TestPickWeightedNDistinct verifies draws are without replacement
func TestPickWeightedNDistinct(t *testing.T) {
	rng := NewFastRand(9)
	items := []Weighted[int]{
		{Item: 1, Weight: 1},
		{Item: 2, Weight: 1},
		{Item: 3, Weight: 1},
		{Item: 4, Weight: 1},
		{Item: 5, Weight: 1},
	}

	for trial := 0; trial < 50; trial++ {
		out := PickWeightedN(rng, items, 3)
		if len(out) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(out))
		}
		seen := map[int]bool{}
		for _, v := range out {
			if seen[v] {
				t.Fatalf("Duplicate item %d in draw %v", v, out)
			}
			seen[v] = true
		}
	}
}

// TestPickWeightedNZero verifies non-positive n returns nothing
func TestPickWeightedNZero(t *testing.T) {
	rng := NewFastRand(2)
	items := []Weighted[int]{{Item: 1, Weight: 1}}
	if out := PickWeightedN(rng, items, 0); out != nil {
		t.Errorf("Expected nil for n=0, got %v", out)
	}
}
