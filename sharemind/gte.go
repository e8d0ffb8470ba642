//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

// GTE returns a Secret holding 1 if reconstruct(x) >= reconstruct(y),
// else 0. It treats the ring as two's-complement: d = x - y wraps iff
// x < y, in which case d's top bit is 1. Inputs must lie in
// [0, 2^(n-1)) for the comparison to be meaningful; GTE itself does
// not enforce that range (spec.md leaves enforcement to the caller,
// e.g. a CLI demo).
func GTE(x, y *Secret) (*Secret, error) {
	if err := checkSameSize(x, y); err != nil {
		return nil, err
	}
	n := x.size
	if !isPowerOfTwo(n) {
		return nil, ErrSizeNotPowerOfTwo
	}

	d, err := Sub(x, y)
	if err != nil {
		return nil, err
	}
	dBits, err := ExtractBits(d)
	if err != nil {
		return nil, err
	}

	one, err := NewFromValue(1, n)
	if err != nil {
		return nil, err
	}
	return Sub(one, dBits[n-1])
}

// ReconstructToBool reveals s and reports whether its reconstructed
// value is non-zero. Named explicitly per spec.md §9 rather than
// modeled as an implicit boolean coercion, since a GTE result should
// be read by callers as a deliberate reveal, not an incidental one.
func ReconstructToBool(s *Secret) bool {
	return s.Reconstruct() != 0
}
