//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

// FromBinaryShares converts a triple (u1, u2, u3) in {0,1},
// interpreted as b = u1 XOR u2 XOR u3 (equivalently (u1+u2+u3) mod 2),
// into a Secret over Z/2^n holding the same bit b. It samples twelve
// fresh ring randoms in three groups of four, assembles three
// intermediate arithmetic Secrets (ab, ac, bc) from explicit share
// triples, runs one internal Mul to obtain a*b*c, and recombines with
// the inclusion-exclusion identity b = a+b+c-2ab-2ac-2bc+4abc that
// recovers three-input XOR as an arithmetic sum.
func FromBinaryShares(u1, u2, u3 uint64, n int) (*Secret, error) {
	if u1 > 1 || u2 > 1 || u3 > 1 {
		return nil, ErrBadShare
	}
	u := &Secret{size: n, u1: u1, u2: u2, u3: u3}

	// Round 1.
	r12, r13, s12, s13 := Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n)
	s1 := modSub(modSub(modMul(r12, r13, n), s12, n), s13, n)

	r23, r21, s23, s21 := Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n)
	s2 := modSub(modSub(modMul(r23, r21, n), s23, n), s21, n)

	r31, r32, s31, s32 := Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n)
	s3 := modSub(modSub(modMul(r31, r32, n), s31, n), s32, n)

	// Round 2: masked bits.
	b12 := modAdd(r31, u1, n)
	b13 := modAdd(r21, u1, n)
	b23 := modAdd(r12, u2, n)
	b21 := modAdd(r32, u2, n)
	b31 := modAdd(r23, u3, n)
	b32 := modAdd(r13, u3, n)

	c, err := NewFromValue(u3, n)
	if err != nil {
		return nil, err
	}

	// Round 3.
	ab1 := modSub(s31, modMul(r31, b21, n), n)
	ab2 := modSub(modAdd(modMul(b12, b21, n), s32, n), modMul(b12, r32, n), n)
	ab3 := s3
	ab := &Secret{size: n, u1: ab1, u2: ab2, u3: ab3}

	ac1 := modSub(modAdd(modMul(b31, b13, n), s21, n), modMul(b31, r21, n), n)
	ac2 := s2
	ac3 := modSub(s23, modMul(r23, b13, n), n)
	ac := &Secret{size: n, u1: ac1, u2: ac2, u3: ac3}

	bc1 := s1
	bc2 := modSub(s12, modMul(r12, b32, n), n)
	bc3 := modSub(modAdd(modMul(b23, b32, n), s13, n), modMul(b23, r13, n), n)
	bc := &Secret{size: n, u1: bc1, u2: bc2, u3: bc3}

	abc, err := Mul(ab, c)
	if err != nil {
		return nil, err
	}

	// Round 4: w = u - 2ab - 2ac - 2bc + 4abc. Add/Sub/MulScalar each
	// reshare their result already, matching the reference
	// implementation's operator overloads (each of which reshares);
	// the trailing w.Reshare() mirrors its final explicit re_share().
	w, err := Sub(u, MulScalar(ab, 2))
	if err != nil {
		return nil, err
	}
	w, err = Sub(w, MulScalar(ac, 2))
	if err != nil {
		return nil, err
	}
	w, err = Sub(w, MulScalar(bc, 2))
	if err != nil {
		return nil, err
	}
	w, err = Add(w, MulScalar(abc, 4))
	if err != nil {
		return nil, err
	}
	w.Reshare()
	return w, nil
}
