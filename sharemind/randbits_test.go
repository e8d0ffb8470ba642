//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "testing"

func TestGenRandomAndBits(t *testing.T) {
	withSeed(9, func() {
		for _, n := range []int{4, 8, 16} {
			r, bits, err := GenRandomAndBits(n)
			if err != nil {
				t.Fatal(err)
			}
			if len(bits) != n {
				t.Fatalf("n=%d: got %d bits, want %d", n, len(bits), n)
			}
			var sum uint64
			for i, bit := range bits {
				v := bit.Reconstruct()
				if v != 0 && v != 1 {
					t.Fatalf("n=%d bit %d reconstructs to %d, not 0/1", n, i, v)
				}
				sum = modAdd(sum, v<<uint(i), n)
			}
			if got := r.Reconstruct(); got != sum {
				t.Errorf("n=%d: r=%d, sum(bits)=%d", n, got, sum)
			}
		}
	})
}
