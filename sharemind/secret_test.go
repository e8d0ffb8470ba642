//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import (
	"errors"
	"testing"
)

func TestNewFromValueRoundTrip(t *testing.T) {
	withSeed(0, func() {
		for _, n := range []int{2, 4, 8, 16, 32} {
			for _, v := range []uint64{0, 1, mask(n) / 2, mask(n)} {
				s, err := NewFromValue(v, n)
				if err != nil {
					t.Fatalf("NewFromValue(%d,%d): %v", v, n, err)
				}
				if got := s.Reconstruct(); got != v {
					t.Errorf("n=%d v=%d: Reconstruct()=%d", n, v, got)
				}
			}
		}
	})
}

func TestNewFromValueZero(t *testing.T) {
	withSeed(0, func() {
		s, err := NewFromValue(0, 32)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Reconstruct(); got != 0 {
			t.Errorf("Reconstruct()=%d, want 0", got)
		}
	})
}

func TestNewFromValueMax(t *testing.T) {
	withSeed(0, func() {
		v := uint64(1)<<32 - 1
		s, err := NewFromValue(v, 32)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Reconstruct(); got != v {
			t.Errorf("Reconstruct()=%d, want %d", got, v)
		}
	})
}

func TestNewFromValueOutOfRange(t *testing.T) {
	withSeed(0, func() {
		_, err := NewFromValue(uint64(1)<<32, 32)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("err=%v, want ErrOutOfRange", err)
		}
	})
}

func TestNewFromSharesRoundTrip(t *testing.T) {
	tests := []struct {
		n      int
		shares [3]uint64
	}{
		{8, [3]uint64{100, 200, 50}},
		{16, [3]uint64{0, 0, 0}},
		{32, [3]uint64{mask(32), mask(32), mask(32)}},
	}
	for _, test := range tests {
		s, err := NewFromShares(test.shares, test.n)
		if err != nil {
			t.Fatalf("NewFromShares(%v,%d): %v", test.shares, test.n, err)
		}
		want := modAdd(modAdd(test.shares[0], test.shares[1], test.n), test.shares[2], test.n)
		if got := s.Reconstruct(); got != want {
			t.Errorf("n=%d shares=%v: Reconstruct()=%d, want %d", test.n, test.shares, got, want)
		}
	}
}

func TestNewFromSharesShareOutOfRange(t *testing.T) {
	_, err := NewFromShares([3]uint64{1 << 9, 0, 0}, 8)
	if !errors.Is(err, ErrBadShare) {
		t.Fatalf("err=%v, want ErrBadShare", err)
	}
}

func TestReshareInvariance(t *testing.T) {
	withSeed(1, func() {
		s, err := NewFromValue(12345, 16)
		if err != nil {
			t.Fatal(err)
		}
		want := s.Reconstruct()
		for i := 0; i < 20; i++ {
			s.Reshare()
			if got := s.Reconstruct(); got != want {
				t.Fatalf("after %d reshares: Reconstruct()=%d, want %d", i+1, got, want)
			}
		}
	})
}
