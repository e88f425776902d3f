package epsteinlib

import "golang.org/x/exp/constraints"

// Options tunes the numerical knobs the driver and the incomplete-gamma
// kernel otherwise hold as fixed constants. The zero value is not valid;
// use DefaultOptions and override individual fields.
type Options struct {
	// GBound is the real/reciprocal truncation parameter (spec G_BOUND).
	// Larger values widen the summation box and cost more terms for the
	// same accuracy margin.
	GBound float64

	// ProjectionEps is the tolerance used to classify ν against integer,
	// pole and resonance points, and the half-width of the ν ≈ 2 and ν ≈ 4
	// windows in assignZArgBound.
	ProjectionEps float64

	// SeriesEps is the relative-tolerance cutoff for the power-series and
	// continued-fraction evaluators in the incomplete-gamma kernel.
	SeriesEps float64

	// MaxSeriesIters caps the Taylor-series loop in the pt evaluator.
	MaxSeriesIters int

	// MaxCFIters caps the modified-Lentz continued-fraction loop in the
	// cf evaluator.
	MaxCFIters int

	// MaxUAIters is reserved for future tuning of the uniform-asymptotic
	// evaluator. Its beta-polynomial recursion is anchored at the fixed
	// end of its coefficient table, so it cannot be truncated without
	// recomputing a different table; the evaluator currently always uses
	// all 26 terms regardless of this field.
	MaxUAIters int
}

// DefaultOptions returns the tuning used by Zeta and ZetaReg, matching
// every constant pinned by the reference algorithm.
func DefaultOptions() Options {
	return Options{
		GBound:         3.2,
		ProjectionEps:  0x1p-30,
		SeriesEps:      0x1p-54,
		MaxSeriesIters: 80,
		MaxCFIters:     200,
		MaxUAIters:     30,
	}
}

// clampPositive floors v at min, guarding the iteration caps above against
// a misconfigured Options value that would otherwise make a series
// evaluator return after zero terms.
func clampPositive[T constraints.Integer](v, min T) T {
	if v < min {
		return min
	}
	return v
}
