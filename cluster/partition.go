package cluster

import (
	"encoding/binary"
	"fmt"
	"iter"
)

// Partition assigns each of n items to one of k groups. It is immutable:
// Move and Neighbors return new partitions.
type Partition struct {
	assign []int // item index → group index in [0, k)
	k      int
}

// Seed returns the initial partition for n items and k groups: every item
// in group 0, groups 1..k-1 empty.
func Seed(n, k int) (Partition, error) {
	if k < 1 {
		return Partition{}, fmt.Errorf("%w (%d)", ErrInvalidK, k)
	}
	if n < 0 {
		return Partition{}, fmt.Errorf("%w: negative item count %d", ErrItemOutOfRange, n)
	}

	return Partition{assign: make([]int, n), k: k}, nil
}

// K returns the number of groups.
func (p Partition) K() int { return p.k }

// Len returns the number of items.
func (p Partition) Len() int { return len(p.assign) }

// GroupOf returns the group of item i.
func (p Partition) GroupOf(i int) int { return p.assign[i] }

// Assignment returns a copy of the item → group vector.
func (p Partition) Assignment() []int {
	return append([]int(nil), p.assign...)
}

// Sizes returns the number of items in each group.
func (p Partition) Sizes() []int {
	sizes := make([]int, p.k)
	for _, g := range p.assign {
		sizes[g]++
	}

	return sizes
}

// Move returns the partition with item i placed in group g.
func (p Partition) Move(i, g int) (Partition, error) {
	if i < 0 || i >= len(p.assign) {
		return Partition{}, fmt.Errorf("%w: item %d", ErrItemOutOfRange, i)
	}
	if g < 0 || g >= p.k {
		return Partition{}, fmt.Errorf("%w: group %d", ErrGroupOutOfRange, g)
	}

	return p.moved(i, g), nil
}

// moved copies the assignment and reassigns item i. Bounds are the caller's job.
func (p Partition) moved(i, g int) Partition {
	next := make([]int, len(p.assign))
	copy(next, p.assign)
	next[i] = g

	return Partition{assign: next, k: p.k}
}

// Neighbors yields every partition that differs by one item's group: items
// in index order, target groups ascending, the item's own group skipped.
func (p Partition) Neighbors() iter.Seq[Partition] {
	return func(yield func(Partition) bool) {
		for i, from := range p.assign {
			for g := 0; g < p.k; g++ {
				if g == from {
					continue
				}
				if !yield(p.moved(i, g)) {
					return
				}
			}
		}
	}
}

// Key returns the identity key of p: the varint-encoded assignment vector.
// Equal partitions (same k, same assignment) have equal keys.
func (p Partition) Key() string {
	buf := make([]byte, 0, len(p.assign)+binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, uint64(p.k))
	for _, g := range p.assign {
		buf = binary.AppendUvarint(buf, uint64(g))
	}

	return string(buf)
}

// Groups lays items out by p: exactly p.K() groups, items in input order,
// empty groups as empty (non-nil) slices.
// len(items) must equal p.Len().
func Groups[T any](p Partition, items []T) [][]T {
	sizes := p.Sizes()
	out := make([][]T, p.k)
	for g := range out {
		out[g] = make([]T, 0, sizes[g])
	}
	for i, g := range p.assign {
		out[g] = append(out[g], items[i])
	}

	return out
}
