//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

// GenRandomAndBits produces a fresh Secret r together with its
// little-endian bit decomposition, each bit itself an arithmetic
// Secret, such that no single party's view reveals r or any of its
// bits. Each bit is obtained by sampling an independent {0,1}-valued
// share triple and passing it through FromBinaryShares; since each of
// the three samples is itself uniform in {0,1}, the resulting bit is
// uniform in {0,1}, so r = sum(r_i * 2^i) is uniform in [0, 2^n).
func GenRandomAndBits(n int) (*Secret, []*Secret, error) {
	bits := make([]*Secret, n)
	for i := 0; i < n; i++ {
		bit, err := FromBinaryShares(Rand.SampleBit(), Rand.SampleBit(), Rand.SampleBit(), n)
		if err != nil {
			return nil, nil, err
		}
		bits[i] = bit
	}

	r, err := NewFromValue(0, n)
	if err != nil {
		return nil, nil, err
	}
	for i, bit := range bits {
		r, err = Add(r, MulScalar(bit, uint64(1)<<uint(i)))
		if err != nil {
			return nil, nil, err
		}
	}

	return r, bits, nil
}
