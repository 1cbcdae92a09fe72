package calc_test

import (
	"fmt"

	calc "github.com/cesarcorrales17/calculadora-cientifica"
)

func Example() {
	for _, expr := range []string{"2+3*4", "2^3^2", "sqrt(-4)", "sin(pi/2)", "5!", "1/0"} {
		n, err := calc.Evaluate(expr)
		if err != nil {
			fmt.Printf("%s = error: %v\n", expr, err)
			continue
		}
		fmt.Printf("%s = %s\n", expr, calc.FormatResult(n, 12))
	}

	// Output:
	// 2+3*4 = 14
	// 2^3^2 = 512
	// sqrt(-4) = 0+2i
	// sin(pi/2) = 1
	// 5! = 120
	// 1/0 = error: division by zero: "/"
}
