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

func TestMulScenarios(t *testing.T) {
	tests := []struct {
		n    int
		x, y uint64
		want uint64
	}{
		{16, 40000, 30000, 35840},
		{8, 200, 150, 48},
	}
	for _, test := range tests {
		withSeed(6, func() {
			x, err := NewFromValue(test.x, test.n)
			if err != nil {
				t.Fatal(err)
			}
			y, err := NewFromValue(test.y, test.n)
			if err != nil {
				t.Fatal(err)
			}
			w, err := Mul(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got := w.Reconstruct(); got != test.want {
				t.Errorf("n=%d Mul(%d,%d)=%d, want %d", test.n, test.x, test.y, got, test.want)
			}
		})
	}
}

func TestMulRandomized(t *testing.T) {
	withSeed(7, func() {
		for _, n := range []int{8, 16, 32, 64} {
			for trial := 0; trial < 50; trial++ {
				i := Rand.SampleRing(n)
				j := Rand.SampleRing(n)
				x, err := NewFromValue(i, n)
				if err != nil {
					t.Fatal(err)
				}
				y, err := NewFromValue(j, n)
				if err != nil {
					t.Fatal(err)
				}
				w, err := Mul(x, y)
				if err != nil {
					t.Fatal(err)
				}
				want := modMul(i, j, n)
				if got := w.Reconstruct(); got != want {
					t.Fatalf("n=%d trial=%d Mul(%d,%d)=%d, want %d", n, trial, i, j, got, want)
				}
			}
		}
	})
}

func TestMulSizeMismatch(t *testing.T) {
	withSeed(8, func() {
		x, _ := NewFromValue(1, 8)
		y, _ := NewFromValue(1, 16)
		if _, err := Mul(x, y); !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("err=%v, want ErrSizeMismatch", err)
		}
	})
}
