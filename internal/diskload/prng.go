package diskload

// lcgMultiplier is Knuth's MMIX constant; with increment 1 the generator
// has a full 2^64 period regardless of seed.
const lcgMultiplier = 6364136223846793005

// lcg is the per-worker pseudo-random stream used both to pick offsets and
// to fill write buffers. Each worker owns exactly one stream seeded from its
// index; streams are never shared, so no synchronization is needed.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

// next advances the stream and returns the new state.
func (l *lcg) next() uint64 {
	l.state = l.state*lcgMultiplier + 1
	return l.state
}

// fill overwrites buf with pseudo-random bytes, one draw per byte.
func (l *lcg) fill(buf []byte) {
	for i := range buf {
		buf[i] = byte(l.next() % 256)
	}
}
