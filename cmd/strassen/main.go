// SPDX-License-Identifier: MIT

// Command strassen multiplies two random N×N integer matrices with the
// parallel Strassen algorithm and with the naive triple loop, printing the
// operands, both products and the wall-clock and CPU time of each run.
//
// Usage:
//
//	strassen [-n N] [--seed S] [--max-depth D] [--sequential] [--quiet] [--verify]
//
// Without -n (and without STRASSEN_SIZE) the row length is read from stdin.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
