//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "testing"

func TestSeededSourceDeterministic(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)
	for i := 0; i < 100; i++ {
		if x, y := a.SampleRing(32), b.SampleRing(32); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestSeededSourceDifferentSeeds(t *testing.T) {
	a := NewSeededSource(1)
	b := NewSeededSource(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.SampleRing(64) != b.SampleRing(64) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two different seeds produced the same sequence")
	}
}

func TestSampleRingInRange(t *testing.T) {
	s := NewSeededSource(7)
	for _, n := range []int{1, 2, 8, 16, 32, 64} {
		for i := 0; i < 200; i++ {
			if v := s.SampleRing(n); !inRange(v, n) {
				t.Fatalf("n=%d: SampleRing returned %d, out of range", n, v)
			}
		}
	}
}

func TestSampleBitIsBinary(t *testing.T) {
	s := NewSeededSource(8)
	for i := 0; i < 200; i++ {
		if v := s.SampleBit(); v != 0 && v != 1 {
			t.Fatalf("SampleBit returned %d", v)
		}
	}
}

func TestCryptoSourceDiffers(t *testing.T) {
	a := NewCryptoSource()
	b := NewCryptoSource()
	same := true
	for i := 0; i < 10; i++ {
		if a.SampleRing(64) != b.SampleRing(64) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two independently-keyed CryptoSources produced the same sequence")
	}
}
