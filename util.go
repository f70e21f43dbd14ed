package dicecore

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// cryptoSource is a math/rand.Source64 backed by the system CSPRNG. It lets
// RNGRoller reuse math/rand's convenient Intn/Int63n helpers while still
// drawing entropy from crypto/rand, matching the teacher's own
// crypto-backed default Source.
type cryptoSource struct{}

// Seed is a no-op; the system CSPRNG cannot be seeded.
func (cryptoSource) Seed(int64) {}

func (s cryptoSource) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

func (cryptoSource) Uint64() (u uint64) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(buf[:])
}

// secureSource is the package-level default: a math/rand.Rand over
// cryptoSource, used whenever an RNGRoller is constructed without an
// explicit source.
func secureSource() *rand.Rand {
	return rand.New(cryptoSource{})
}
