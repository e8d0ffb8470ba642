//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "fmt"

// Secret is a value additively shared across three parties over
// Z/2^n: u1 + u2 + u3 ≡ v (mod 2^n). All three parties are simulated
// in-process; a Secret owns its share triple and is a cheap value
// object, generalizing the two-party Share type of the reference
// masked-field sharing scheme to three parties and a power-of-two
// ring.
type Secret struct {
	size       int
	u1, u2, u3 uint64
}

// NewFromValue shares a plaintext value v in [0, 2^n) across three
// parties: u1 and u2 are sampled uniformly from Rand and u3 is set so
// that the triple sums to v mod 2^n.
func NewFromValue(v uint64, n int) (*Secret, error) {
	if n <= 0 || n > MaxSize {
		return nil, fmt.Errorf("sharemind: invalid size %d: %w", n, ErrOutOfRange)
	}
	if !inRange(v, n) {
		return nil, fmt.Errorf("sharemind: value %d does not fit in %d bits: %w", v, n, ErrOutOfRange)
	}

	u1 := Rand.SampleRing(n)
	u2 := Rand.SampleRing(n)
	u3 := modSub(v, modAdd(u1, u2, n), n)

	return &Secret{size: n, u1: u1, u2: u2, u3: u3}, nil
}

// NewFromShares constructs a Secret from an explicit triple of
// shares, each of which must lie in [0, 2^n).
func NewFromShares(shares [3]uint64, n int) (*Secret, error) {
	if n <= 0 || n > MaxSize {
		return nil, fmt.Errorf("sharemind: invalid size %d: %w", n, ErrOutOfRange)
	}
	for _, s := range shares {
		if !inRange(s, n) {
			return nil, fmt.Errorf("sharemind: share %d does not fit in %d bits: %w", s, n, ErrBadShare)
		}
	}
	return &Secret{size: n, u1: shares[0], u2: shares[1], u3: shares[2]}, nil
}

// Size returns the Secret's bit size n.
func (s *Secret) Size() int {
	return s.size
}

// Shares returns the Secret's three shares in order (u1, u2, u3).
func (s *Secret) Shares() (uint64, uint64, uint64) {
	return s.u1, s.u2, s.u3
}

// Reconstruct sums the three shares mod 2^n to recover the plaintext
// value.
func (s *Secret) Reconstruct() uint64 {
	return modAdd(modAdd(s.u1, s.u2, s.size), s.u3, s.size)
}

// Reshare rerandomizes the share triple in place while preserving its
// sum, scrubbing any distribution leakage accumulated by a
// non-universally-composable operation. The core is single-threaded
// and synchronous (spec.md §5), so in-place mutation here never races
// with another read of the same Secret.
func (s *Secret) Reshare() {
	r1 := Rand.SampleRing(s.size)
	r2 := Rand.SampleRing(s.size)
	r3 := Rand.SampleRing(s.size)

	w1 := modAdd(modSub(s.u1, r1, s.size), r3, s.size)
	w2 := modAdd(modSub(s.u2, r2, s.size), r1, s.size)
	w3 := modAdd(modSub(s.u3, r3, s.size), r2, s.size)

	s.u1, s.u2, s.u3 = w1, w2, w3
}

// String implements fmt.Stringer, printing the reconstructed value -
// matching the reference implementation's __repr__.
func (s *Secret) String() string {
	return fmt.Sprintf("%d", s.Reconstruct())
}
