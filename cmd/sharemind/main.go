//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

// Command sharemind is a small CLI around the sharemind package: it
// splits numbers into three-party additive shares, reconstructs them,
// and drives the secure multiplication and GTE protocols end to end.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "share":
		err = cmdShare(os.Args[2:])
	case "reconstruct":
		err = cmdReconstruct(os.Args[2:])
	case "multiply":
		err = cmdMultiply(os.Args[2:])
	case "gte":
		err = cmdGTE(os.Args[2:])
	case "demo":
		err = cmdDemo(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "invalid command: %v\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sharemind share/reconstruct/multiply/gte/demo [flags] args...")
}
