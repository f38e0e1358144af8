// SPDX-License-Identifier: MIT
package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/builder"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

func ExampleMultiply() {
	a, _ := builder.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := builder.FromRows([][]int{{5, 6}, {7, 8}})
	c, _ := matrix.NewStore[int](2, 2)

	if err := strassen.Multiply(a.Full(), b.Full(), c.Full(), 2, 0); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

func ExampleProduct() {
	a, _ := builder.Identity[float64](4)
	b, _ := builder.Random[float64](4, 4, builder.WithSeed(1), builder.WithRange(0, 9))

	c, err := strassen.Product(a, b, strassen.WithSequential())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(matrix.Equal(b.Full(), c.Full()))
	// Output: true
}
