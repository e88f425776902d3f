package epsteinlib

// kahanSum accumulates a sequence of complex128 values with Kahan
// compensated summation. Go's complex arithmetic is exactly componentwise
// real arithmetic, so compensating the combined value compensates the real
// and imaginary parts independently.
type kahanSum struct {
	sum complex128
	c   complex128
}

// Add folds v into the running sum.
func (k *kahanSum) Add(v complex128) {
	y := v - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Result returns the compensated sum accumulated so far.
func (k *kahanSum) Result() complex128 {
	return k.sum
}
