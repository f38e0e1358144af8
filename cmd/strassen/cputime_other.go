// SPDX-License-Identifier: MIT

//go:build !unix

package main

import "time"

// cpuTime is unavailable without getrusage; CPU time reports as 0.
func cpuTime() time.Duration { return 0 }
