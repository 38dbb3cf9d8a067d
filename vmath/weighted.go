package vmath

import (
	"errors"
)

// ErrEmptySelection is returned when a weighted pick is attempted over an
// empty list; callers must guard against this before drawing
var ErrEmptySelection = errors.New("weighted selection over empty list")

// Weighted pairs an item with a non-negative selection weight
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// PickWeighted returns one item with probability proportional to
// weight / total weight. Negative weights are treated as zero.
// If the total weight is zero the first item is returned as a fallback.
// The injected rng keeps selection deterministic under a fixed seed.
func PickWeighted[T any](rng *FastRand, items []Weighted[T]) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySelection
	}

	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return items[0].Item, nil
	}

	roll := rng.Float64() * total
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		roll -= it.Weight
		if roll < 0 {
			return it.Item, nil
		}
	}
	// Float accumulation can land exactly on total; last positive item wins
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return items[i].Item, nil
		}
	}
	return items[0].Item, nil
}

// PickWeightedN draws up to n distinct items without replacement
// Returns all items when len(items) <= n, in input order
func PickWeightedN[T any](rng *FastRand, items []Weighted[T], n int) []T {
	if n <= 0 {
		return nil
	}
	if len(items) <= n {
		out := make([]T, 0, len(items))
		for _, it := range items {
			out = append(out, it.Item)
		}
		return out
	}

	pool := make([]Weighted[T], len(items))
	copy(pool, items)
	out := make([]T, 0, n)
	for len(out) < n && len(pool) > 0 {
		total := 0.0
		for _, it := range pool {
			if it.Weight > 0 {
				total += it.Weight
			}
		}
		idx := 0
		if total > 0 {
			roll := rng.Float64() * total
			for i, it := range pool {
				if it.Weight <= 0 {
					continue
				}
				roll -= it.Weight
				if roll < 0 {
					idx = i
					break
				}
			}
		}
		out = append(out, pool[idx].Item)
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}
