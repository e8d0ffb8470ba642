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

func cmdGTE(args []string) error {
	fs := flag.NewFlagSet("gte", flag.ExitOnError)
	size := fs.Int("size", sharemind.DefaultSize, "number of bits to use for the shares")
	autoReconstruct := fs.Bool("auto-reconstruct", false, "automatically reconstruct the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: sharemind gte [--size N] [--auto-reconstruct] number_1 number_2")
	}

	n1, err := parseUint64(fs.Arg(0))
	if err != nil {
		return err
	}
	n2, err := parseUint64(fs.Arg(1))
	if err != nil {
		return err
	}

	u, err := sharemind.NewFromValue(n1, *size)
	if err != nil {
		return fmt.Errorf("cannot share %d at size %d: %w", n1, *size, err)
	}
	v, err := sharemind.NewFromValue(n2, *size)
	if err != nil {
		return fmt.Errorf("cannot share %d at size %d: %w", n2, *size, err)
	}

	table := newSharesTable()
	table.addLabel(fmt.Sprintf("%d", n1), u)
	table.addLabel(fmt.Sprintf("%d", n2), v)

	result, err := sharemind.GTE(u, v)
	if err != nil {
		return fmt.Errorf("cannot compute gte: %w", err)
	}
	table.addLabel(fmt.Sprintf("%d >= %d", n1, n2), result)
	table.print()

	if *autoReconstruct {
		fmt.Printf("The result reconstructs to the value %t\n", sharemind.ReconstructToBool(result))
	}
	return nil
}
