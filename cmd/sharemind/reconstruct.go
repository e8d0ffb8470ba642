//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"

	"github.com/OfekZeevi/sharemind/sharemind"
)

func cmdReconstruct(args []string) error {
	fs := flag.NewFlagSet("reconstruct", flag.ExitOnError)
	size := fs.Int("size", sharemind.DefaultSize, "number of bits to use for the shares")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: sharemind reconstruct [--size N] share_1 share_2 share_3")
	}

	var shares [3]uint64
	for i := 0; i < 3; i++ {
		v, err := parseUint64(fs.Arg(i))
		if err != nil {
			return err
		}
		shares[i] = v
	}

	s, err := sharemind.NewFromShares(shares, *size)
	if err != nil {
		return fmt.Errorf("cannot reconstruct from shares %v at size %d: %w", shares, *size, err)
	}

	fmt.Printf("The shares (%d %d %d) reconstruct to give the number %d\n",
		shares[0], shares[1], shares[2], s.Reconstruct())
	return nil
}
