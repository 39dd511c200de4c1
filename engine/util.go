package engine

import "golang.org/x/exp/constraints"

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// boolToInt is used for the step-function terms (attacker present, file has no pawn).
func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
