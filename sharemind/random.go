//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Source is a uniform integer source over [0, 2^n) for a given bit
// size n, plus a single uniform bit. It is factored behind an
// interface, generalizing the masked-reveal pattern of
// randomFieldElement in the reference additive-sharing code, so that
// tests can inject determinism instead of drawing from the OS CSPRNG.
type Source interface {
	// SampleRing returns a value uniform in [0, 2^n).
	SampleRing(n int) uint64

	// SampleBit returns a value uniform in {0, 1}.
	SampleBit() uint64
}

// Rand is the process-wide randomness source used by every core
// operation that does not take an explicit Source. It has no
// persistence and may be swapped out wholesale, which is how tests
// obtain the deterministic sequences spec.md ties its worked examples
// to.
var Rand Source = NewCryptoSource()

// streamSource draws uniform bytes from a chacha20 keystream. Both
// CryptoSource and SeededSource are streamSources differing only in
// how the stream is keyed.
type streamSource struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

func newStreamSource(key [chacha20.KeySize]byte) *streamSource {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// chacha20.NewUnauthenticatedCipher only fails on a
		// malformed key/nonce length, which cannot happen given the
		// fixed-size arrays above.
		panic(err)
	}
	return &streamSource{stream: stream}
}

func (s *streamSource) nextUint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf [8]byte
	s.stream.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// SampleRing returns a value uniform in [0, 2^n) by drawing a fresh
// 64-bit word from the stream and masking it down to n bits.
func (s *streamSource) SampleRing(n int) uint64 {
	return reduce(s.nextUint64(), n)
}

// SampleBit returns a value uniform in {0, 1}.
func (s *streamSource) SampleBit() uint64 {
	return s.nextUint64() & 1
}

// CryptoSource is the default Source: a chacha20 stream keyed from
// crypto/rand. It is safe for concurrent use.
type CryptoSource struct {
	*streamSource
}

// NewCryptoSource creates a CryptoSource keyed from the OS CSPRNG.
func NewCryptoSource() *CryptoSource {
	var key [chacha20.KeySize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		panic(err)
	}
	return &CryptoSource{streamSource: newStreamSource(key)}
}

// SeededSource is a deterministic Source for tests: the same seed
// always produces the same sequence of SampleRing/SampleBit calls, so
// the worked examples and property tests in spec.md §8 ("a
// deterministic random source seeded 0") are reproducible.
type SeededSource struct {
	*streamSource
}

// NewSeededSource creates a SeededSource keyed deterministically from
// a uint64 seed.
func NewSeededSource(seed uint64) *SeededSource {
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], seed)
	key := sha256.Sum256(seedBytes[:])
	return &SeededSource{streamSource: newStreamSource(key)}
}
