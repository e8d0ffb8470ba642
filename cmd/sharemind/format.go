//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/markkurossi/tabulate"

	"github.com/OfekZeevi/sharemind/sharemind"
)

// parseUint64 parses a CLI positional argument as an unsigned integer,
// returning the same kind of error for every subcommand so the exit
// code and message stay consistent.
func parseUint64(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", arg, err)
	}
	return v, nil
}

// sharesTable renders a label and the three shares of a Secret as an
// aligned table, one row per labeled value.
type sharesTable struct {
	tab *tabulate.Tabulate
}

func newSharesTable() *sharesTable {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("value")
	tab.Header("u1")
	tab.Header("u2")
	tab.Header("u3")
	return &sharesTable{tab: tab}
}

func (t *sharesTable) addLabel(label string, s *sharemind.Secret) {
	u1, u2, u3 := s.Shares()
	row := t.tab.Row()
	row.Column(label)
	row.Column(strconv.FormatUint(u1, 10))
	row.Column(strconv.FormatUint(u2, 10))
	row.Column(strconv.FormatUint(u3, 10))
}

func (t *sharesTable) print() {
	t.tab.Print(os.Stdout)
}
