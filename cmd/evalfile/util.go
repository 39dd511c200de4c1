package main

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// abs returns the absolute value of x.
func abs[T number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
