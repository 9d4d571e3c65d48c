// Package math includes important helpers for consensus arithmetic.
package math

import stdmath "math"

// IntegerSquareRoot defines a function that returns the largest possible
// integer root of a number using a divide and conquer approach.
func IntegerSquareRoot(n uint64) uint64 {
	if n >= stdmath.MaxInt64 {
		return isqrtFallback(n)
	}
	x := uint64(stdmath.Sqrt(float64(n)))
	// float64 precision can overshoot by one for large inputs.
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

func isqrtFallback(n uint64) uint64 {
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
