//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

// Mul implements the Sharemind three-party secure multiplication
// protocol: it computes a fresh sharing of x*y mod 2^n without any
// party's local view revealing either operand. It is the three-party
// generalization of the masked-open-recombine pattern used by
// Beaver-triple multiplication in two-party field sharing (mask each
// operand, open the masked values, recombine with an algebraic
// identity that cancels the masks) - here with 12 fresh masks per
// call instead of a precomputed triple, matching the protocol exactly
// as described in the source paper.
func Mul(x, y *Secret) (*Secret, error) {
	if err := checkSameSize(x, y); err != nil {
		return nil, err
	}
	n := x.size
	u1, u2, u3 := x.u1, x.u2, x.u3
	v1, v2, v3 := y.u1, y.u2, y.u3

	// Round 1: twelve fresh uniform ring elements.
	r12, r13, s12, s13 := Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n)
	r23, r21, s23, s21 := Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n)
	r31, r32, s31, s32 := Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n), Rand.SampleRing(n)

	// Round 2: masked shares distributed between pairs of parties.
	a12 := modAdd(u1, r31, n)
	b12 := modAdd(v1, s31, n)
	a13 := modAdd(u1, r21, n)
	b13 := modAdd(v1, s21, n)
	a23 := modAdd(u2, r12, n)
	b23 := modAdd(v2, s12, n)
	a21 := modAdd(u2, r32, n)
	b21 := modAdd(v2, s32, n)
	a31 := modAdd(u3, r23, n)
	b31 := modAdd(v3, s23, n)
	a32 := modAdd(u3, r13, n)
	b32 := modAdd(v3, s13, n)

	// Round 3: party-local output shares.
	c1 := modAdd(
		modAdd(
			modAdd(modMul(u1, b21, n), modMul(u1, b31, n), n),
			modAdd(modMul(v1, a21, n), modMul(v1, a31, n), n),
			n,
		),
		modSub(
			modAdd(modMul(r12, s13, n), modMul(s12, r13, n), n),
			modAdd(modMul(a12, b21, n), modMul(b12, a21, n), n),
			n,
		),
		n,
	)
	w1 := modAdd(c1, modMul(u1, v1, n), n)

	c2 := modAdd(
		modAdd(
			modAdd(modMul(u2, b32, n), modMul(u2, b12, n), n),
			modAdd(modMul(v2, a32, n), modMul(v2, a12, n), n),
			n,
		),
		modSub(
			modAdd(modMul(r23, s21, n), modMul(s23, r21, n), n),
			modAdd(modMul(a23, b32, n), modMul(b23, a32, n), n),
			n,
		),
		n,
	)
	w2 := modAdd(c2, modMul(u2, v2, n), n)

	c3 := modAdd(
		modAdd(
			modAdd(modMul(u3, b13, n), modMul(u3, b23, n), n),
			modAdd(modMul(v3, a13, n), modMul(v3, a23, n), n),
			n,
		),
		modSub(
			modAdd(modMul(r31, s32, n), modMul(s31, r32, n), n),
			modAdd(modMul(a31, b13, n), modMul(b31, a13, n), n),
			n,
		),
		n,
	)
	w3 := modAdd(c3, modMul(u3, v3, n), n)

	w := &Secret{size: n, u1: w1, u2: w2, u3: w3}
	w.Reshare()
	return w, nil
}
