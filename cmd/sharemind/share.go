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

func cmdShare(args []string) error {
	fs := flag.NewFlagSet("share", flag.ExitOnError)
	size := fs.Int("size", sharemind.DefaultSize, "number of bits to use for the shares")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: sharemind share [--size N] number")
	}

	number, err := parseUint64(fs.Arg(0))
	if err != nil {
		return err
	}

	s, err := sharemind.NewFromValue(number, *size)
	if err != nil {
		return fmt.Errorf("cannot share %d at size %d: %w", number, *size, err)
	}

	fmt.Printf("The number %d can be expressed with the following shares:\n", number)
	table := newSharesTable()
	table.addLabel(fmt.Sprintf("%d", number), s)
	table.print()
	return nil
}
