//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

// ExtractBits returns the little-endian bit decomposition of x as n
// arithmetic Secrets. It masks x with a fresh random r, reveals the
// masked value (safe because r is unknown to any single party), and
// recombines the revealed bits of the masked value with the shared bits of r
// via BitwiseAdd - the same trick as revealing a Beaver-triple-masked
// operand before recombining, generalized to a full bit
// decomposition instead of a single product.
func ExtractBits(x *Secret) ([]*Secret, error) {
	n := x.size
	r, rBits, err := GenRandomAndBits(n)
	if err != nil {
		return nil, err
	}

	a, err := Sub(x, r)
	if err != nil {
		return nil, err
	}
	aValue := a.Reconstruct()

	aBits := make([]*Secret, n)
	for i := 0; i < n; i++ {
		bit := (aValue >> uint(i)) & 1
		aBit, err := FromBinaryShares(bit, 0, 0, n)
		if err != nil {
			return nil, err
		}
		aBits[i] = aBit
	}

	return BitwiseAdd(aBits, rBits)
}
