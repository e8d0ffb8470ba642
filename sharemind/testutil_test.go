//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

// withSeed swaps Rand for a SeededSource for the duration of fn,
// restoring the previous source afterward, so tests get a
// reproducible sequence without leaking it into other tests.
func withSeed(seed uint64, fn func()) {
	prev := Rand
	Rand = NewSeededSource(seed)
	defer func() { Rand = prev }()
	fn()
}
