// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/strassen/builder"
	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

const prompt = "Give the row length N of N X N matrix: "

// errMismatch reports disagreement between the two products or with gonum.
var errMismatch = errors.New("strassen: products disagree")

// verifyTol bounds the gonum cross-check; integer products convert to
// float64 exactly, so any difference is a real mismatch.
const verifyTol = 1e-9

// driver owns one end-to-end run: read N, build operands, multiply twice,
// report. Only the driver logs; the packages it calls never do.
type driver struct {
	cfg *config.Config
	in  io.Reader
	out io.Writer
	log *log.Logger
}

func (d *driver) run() error {
	d.log.Printf("host: %s", hostReport())

	n := d.cfg.Size
	if n == 0 {
		var err error
		if n, err = d.readSize(); err != nil {
			return err
		}
	}

	seed := d.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d.log.Printf("n=%d seed=%d maxDepth=%d sequential=%t boundsCheck=%t",
		n, seed, d.cfg.MaxDepth, d.cfg.Sequential, d.cfg.BoundsCheck)

	// One RNG stream: A is drawn first, then B.
	rng := rand.New(rand.NewSource(seed))
	storeOpts := builder.WithStoreOptions(d.cfg.MatrixOptions()...)
	a, err := builder.Random[int](n, n, builder.WithRand(rng), storeOpts)
	if err != nil {
		return err
	}
	b, err := builder.Random[int](n, n, builder.WithRand(rng), storeOpts)
	if err != nil {
		return err
	}
	fast, err := builder.Zeros[int](n, n, storeOpts)
	if err != nil {
		return err
	}
	slow, err := builder.Zeros[int](n, n, storeOpts)
	if err != nil {
		return err
	}

	d.printMatrix("A:\n", a.Full())
	d.printMatrix("\nB:\n", b.Full())

	m := strassen.New[int](d.cfg.StrassenOptions()...)
	wall, cpu, err := measure(func() error {
		return m.Multiply(a.Full(), b.Full(), fast.Full(), n, 0)
	})
	if err != nil {
		return err
	}
	d.printMatrix("\nC using parallel Strassen Algorithm:\n\n", fast.Full())
	fmt.Fprintf(d.out, "Parallel Strassen took %s.\n", wall)
	fmt.Fprintf(d.out, "CPU time was %s.\n", cpu)

	wall, cpu, err = measure(func() error {
		return strassen.Naive(a.Full(), b.Full(), slow.Full(), n)
	})
	if err != nil {
		return err
	}
	d.printMatrix("\nC using simple element by element multiplication:\n\n", slow.Full())
	fmt.Fprintf(d.out, "Simple multiplication took %s.\n", wall)
	fmt.Fprintf(d.out, "CPU time was %s.\n", cpu)

	same := matrix.Equal(fast.Full(), slow.Full())
	fmt.Fprintf(d.out, "\nResults match: %t\n", same)
	if !same {
		return errMismatch
	}

	if d.cfg.Verify {
		var want mat.Dense
		want.Mul(matrix.ToGonum(a.Full()), matrix.ToGonum(b.Full()))
		ok := mat.EqualApprox(&want, matrix.ToGonum(fast.Full()), verifyTol)
		fmt.Fprintf(d.out, "gonum cross-check: %t\n", ok)
		if !ok {
			return fmt.Errorf("gonum cross-check: %w", errMismatch)
		}
	}

	return nil
}

// readSize prompts for the row length and reads one positive integer.
func (d *driver) readSize() (int, error) {
	fmt.Fprint(d.out, prompt)
	var n int
	if _, err := fmt.Fscan(d.in, &n); err != nil {
		return 0, fmt.Errorf("read row length: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("row length %d: %w", n, strassen.ErrInvalidSize)
	}

	return n, nil
}

// printMatrix writes title and then one line per row, values separated by
// single spaces. Suppressed in quiet mode.
func (d *driver) printMatrix(title string, r matrix.Region[int]) {
	if d.cfg.Quiet {
		return
	}
	fmt.Fprint(d.out, title)
	fmt.Fprint(d.out, formatRows(r))
}

// formatRows renders r as space-separated rows.
func formatRows(r matrix.Region[int]) string {
	var sb strings.Builder
	for i := 0; i < r.Rows(); i++ {
		row, err := r.Row(i)
		if err != nil {
			break
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// measure runs fn and returns its wall-clock and process CPU time.
func measure(fn func() error) (wall, cpu time.Duration, err error) {
	startWall, startCPU := time.Now(), cpuTime()
	err = fn()

	return time.Since(startWall), cpuTime() - startCPU, err
}
