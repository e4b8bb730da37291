// Package combin enumerates k-element index combinations iteratively.
//
// Combinations are produced in lexicographic order of their index tuples, each exactly
// once, without recursion and without allocating per combination.
package combin

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// Iterator walks every k-subset of {0..n-1}. The zero value is not usable; call New.
//
//	it := combin.New(n, k)
//	for it.Next() {
//		idx := it.Indices()
//	}
type Iterator struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

// New returns an iterator over the k-subsets of n elements. k == 0 yields exactly one
// empty combination; k > n yields none.
func New(n, k int) *Iterator {
	it := &Iterator{n: n, k: k, idx: make([]int, k)}
	if k < 0 || k > n {
		it.done = true
	}
	return it
}

// Next advances to the next combination and reports whether one is available
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		for i := range it.idx {
			it.idx[i] = i
		}
		return true
	}

	// Find the rightmost index that can still move right.
	i := it.k - 1
	for i >= 0 && it.idx[i] == it.n-it.k+i {
		i--
	}
	if i < 0 {
		it.done = true
		return false
	}
	it.idx[i]++
	for j := i + 1; j < it.k; j++ {
		it.idx[j] = it.idx[j-1] + 1
	}
	return true
}

// Indices returns the current combination. The slice is reused by Next.
func (it *Iterator) Indices() []int {
	return it.idx
}

// All materialises every k-subset of n as index tuples. Meant for small fixed tables
// such as the 21 five-card subsets of seven cards.
func All(n, k int) [][]int {
	out := make([][]int, 0, Binomial(n, k))
	it := New(n, k)
	for it.Next() {
		tuple := make([]int, k)
		copy(tuple, it.Indices())
		out = append(out, tuple)
	}
	return out
}
