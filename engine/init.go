package engine

// Package-wide tables, built during package initialization and therefore
// complete before any caller can evaluate.
var (
	defaultMasks     = NewMasks()
	defaultEvaluator = NewEvaluator(defaultMasks, MagicAttacks{})
)

// DefaultMasks returns the shared, read-only geometry tables.
func DefaultMasks() *Masks { return defaultMasks }
