package engine

// xorshift64 RNG. The state is a plain uint64 so it is captured by value in
// every Snapshot; replaying from a snapshot reproduces the same shuffles.
type rng uint64

func newRNG(seed uint64) rng {
	if seed == 0 {
		return 1 // xorshift can't start at 0
	}
	return rng(seed)
}

func (r *rng) next() uint64 {
	x := uint64(*r)
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*r = rng(x)
	return x
}

// intn returns a random number in [0, n).
func (r *rng) intn(n int) int {
	return int(r.next() % uint64(n))
}

// shuffle performs an in-place Fisher-Yates shuffle.
func (r *rng) shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
