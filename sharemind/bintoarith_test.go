//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "testing"

func TestFromBinaryShares(t *testing.T) {
	for u1 := uint64(0); u1 <= 1; u1++ {
		for u2 := uint64(0); u2 <= 1; u2++ {
			for u3 := uint64(0); u3 <= 1; u3++ {
				withSeed(u1*4+u2*2+u3+1, func() {
					s, err := FromBinaryShares(u1, u2, u3, 16)
					if err != nil {
						t.Fatal(err)
					}
					want := (u1 + u2 + u3) % 2
					if got := s.Reconstruct(); got != want {
						t.Errorf("FromBinaryShares(%d,%d,%d)=%d, want %d", u1, u2, u3, got, want)
					}
				})
			}
		}
	}
}

func TestFromBinarySharesBadShare(t *testing.T) {
	withSeed(0, func() {
		if _, err := FromBinaryShares(2, 0, 0, 8); err == nil {
			t.Fatal("expected error for out-of-range bit share")
		}
	})
}
