package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Streams returns n independent generators derived from seed. Stream i depends only on
// seed and i, so a fixed seed and worker count reproduce the same draws.
func Streams(seed int64, n int) []*rand.Rand {
	streams := make([]*rand.Rand, n)
	for i := range streams {
		base := mix(uint64(seed) ^ mix(uint64(i)+1))
		streams[i] = rand.New(rand.NewPCG(base, mix(base+goldenRatio64)))
	}
	return streams
}

// RandomSeed draws a seed from the operating system's entropy source
func RandomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return int64(rand.Uint64())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
