//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "fmt"

func checkSameSize(x, y *Secret) error {
	if x.size != y.size {
		return fmt.Errorf("sharemind: %d vs %d: %w", x.size, y.size, ErrSizeMismatch)
	}
	return nil
}

// Add computes a fresh sharing of x+y mod 2^n by adding the operands
// share-by-share and rerandomizing the result.
func Add(x, y *Secret) (*Secret, error) {
	if err := checkSameSize(x, y); err != nil {
		return nil, err
	}
	n := x.size
	w := &Secret{
		size: n,
		u1:   modAdd(x.u1, y.u1, n),
		u2:   modAdd(x.u2, y.u2, n),
		u3:   modAdd(x.u3, y.u3, n),
	}
	w.Reshare()
	return w, nil
}

// Sub computes a fresh sharing of x-y mod 2^n by subtracting the
// operands share-by-share and rerandomizing the result.
func Sub(x, y *Secret) (*Secret, error) {
	if err := checkSameSize(x, y); err != nil {
		return nil, err
	}
	n := x.size
	w := &Secret{
		size: n,
		u1:   modSub(x.u1, y.u1, n),
		u2:   modSub(x.u2, y.u2, n),
		u3:   modSub(x.u3, y.u3, n),
	}
	w.Reshare()
	return w, nil
}

// MulScalar computes a fresh sharing of x*k mod 2^n for a plaintext
// constant k, by scaling each share and rerandomizing the result.
func MulScalar(x *Secret, k uint64) *Secret {
	n := x.size
	k = reduce(k, n)
	w := &Secret{
		size: n,
		u1:   modMul(x.u1, k, n),
		u2:   modMul(x.u2, k, n),
		u3:   modMul(x.u3, k, n),
	}
	w.Reshare()
	return w
}
