// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// hostReport summarises the parallel resources and SIMD features of the
// machine for the startup log line.
func hostReport() string {
	var feats []string
	add := func(ok bool, name string) {
		if ok {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasSVE2, "sve2")
	}

	return fmt.Sprintf("%s/%s GOMAXPROCS=%d NumCPU=%d simd=[%s]",
		runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0), runtime.NumCPU(), strings.Join(feats, " "))
}
