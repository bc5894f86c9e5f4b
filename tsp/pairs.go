package tsp

import "iter"

// Pairs lazily enumerates every unordered index pair (i, j), 0 ≤ i < j < n,
// in lexicographic order: (0,1), (0,2), …, (0,n-1), (1,2), …, (n-2,n-1).
// One full pass is an epoch's neighborhood; Reset rewinds to (0,1).
//
// A Pairs value is not safe for concurrent use.
type Pairs struct {
	n    int
	i, j int
}

// NewPairs returns an enumerator positioned at (0,1) for a tour of size n.
// For n < 2 the sequence is empty.
func NewPairs(n int) *Pairs {
	p := &Pairs{n: n}
	p.Reset()

	return p
}

// Reset rewinds the enumerator to (0,1).
func (p *Pairs) Reset() {
	p.i, p.j = 0, 1
}

// Count returns the number of pairs in one full pass: n(n-1)/2.
func (p *Pairs) Count() int {
	if p.n < 2 {
		return 0
	}

	return p.n * (p.n - 1) / 2
}

// Next returns the next pair and true, or false once the pass is exhausted.
// An exhausted enumerator keeps returning false until Reset.
//
// Complexity: O(1).
func (p *Pairs) Next() (int, int, bool) {
	if p.i >= p.n-1 {
		return 0, 0, false
	}
	i, j := p.i, p.j

	// Advance: inner index first, then carry into the outer one.
	p.j++
	if p.j == p.n {
		p.i++
		p.j = p.i + 1
	}

	return i, j, true
}

// All returns a fresh, independent pass over the pairs as an iterator.
// It does not disturb the receiver's position.
func (p *Pairs) All() iter.Seq2[int, int] {
	n := p.n

	return func(yield func(int, int) bool) {
		var i, j int
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
