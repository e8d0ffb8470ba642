//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "fmt"

// log2PowerOfTwo returns k such that n == 2^k, for n already known to
// be a power of two.
func log2PowerOfTwo(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}

// BitwiseAdd adds two length-n vectors of arithmetic bit-shares using
// Kogge-Stone carry-look-ahead, producing their length-n sum (the
// carry out of the top bit is discarded, consistent with arithmetic
// mod 2^n). Both vectors, and every Secret in them, must share the
// same size n, and n must be a power of two.
func BitwiseAdd(uBits, vBits []*Secret) ([]*Secret, error) {
	if len(uBits) == 0 || len(uBits) != len(vBits) {
		return nil, fmt.Errorf("sharemind: bit vectors of length %d and %d: %w", len(uBits), len(vBits), ErrSizeMismatch)
	}
	n := uBits[0].size
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("sharemind: size %d: %w", n, ErrSizeNotPowerOfTwo)
	}
	if len(uBits) != n {
		return nil, fmt.Errorf("sharemind: vector length %d, size %d: %w", len(uBits), n, ErrSizeMismatch)
	}
	for _, b := range uBits {
		if b.size != n {
			return nil, fmt.Errorf("sharemind: mismatched bit sizes: %w", ErrSizeMismatch)
		}
	}
	for _, b := range vBits {
		if b.size != n {
			return nil, fmt.Errorf("sharemind: mismatched bit sizes: %w", ErrSizeMismatch)
		}
	}

	// Round 1 (base case): generate and propagate bits. The source
	// paper states this base case twice, contradictorily; this is the
	// correct one.
	s := make([]*Secret, n)
	p := make([]*Secret, n)
	for i := 0; i < n; i++ {
		gen, err := Mul(uBits[i], vBits[i])
		if err != nil {
			return nil, err
		}
		s[i] = gen

		prop, err := Add(uBits[i], vBits[i])
		if err != nil {
			return nil, err
		}
		prop, err = Sub(prop, MulScalar(gen, 2))
		if err != nil {
			return nil, err
		}
		p[i] = prop
	}

	// Rounds 2 .. log2(n)+1: parallel-prefix tree. The l and m loops
	// at fixed k are independent of each other and may be
	// parallelized by an implementer; only the i1-reads-i2-before-p[i1]
	// update ordering within a single (k, l, m) must be preserved.
	logN := log2PowerOfTwo(n)
	for k := 0; k < logN; k++ {
		for l := 0; l < (1 << uint(k)); l++ {
			for m := 0; m < n/(1<<uint(k+1)); m++ {
				i1 := (1 << uint(k)) + l + (1<<uint(k+1))*m
				i2 := (1 << uint(k)) + (1<<uint(k+1))*m - 1

				ps2, err := Mul(p[i1], s[i2])
				if err != nil {
					return nil, err
				}
				s[i1], err = Add(s[i1], ps2)
				if err != nil {
					return nil, err
				}

				p[i1], err = Mul(p[i1], p[i2])
				if err != nil {
					return nil, err
				}
			}
		}
	}

	// Sum bits.
	w := make([]*Secret, n)
	w0, err := Add(uBits[0], vBits[0])
	if err != nil {
		return nil, err
	}
	w0, err = Sub(w0, MulScalar(s[0], 2))
	if err != nil {
		return nil, err
	}
	w[0] = w0

	for i := 1; i < n; i++ {
		wi, err := Add(uBits[i], vBits[i])
		if err != nil {
			return nil, err
		}
		wi, err = Add(wi, s[i-1])
		if err != nil {
			return nil, err
		}
		wi, err = Sub(wi, MulScalar(s[i], 2))
		if err != nil {
			return nil, err
		}
		w[i] = wi
	}

	return w, nil
}
