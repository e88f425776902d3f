package epsteinlib

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Zeta evaluates the Epstein zeta function at exponent nu over the lattice
// generated by the row-major dim x dim matrix a, with shifts x and y, using
// DefaultOptions.
func Zeta(nu float64, dim int, a, x, y []float64) complex128 {
	return ZetaWithOptions(nu, dim, a, x, y, DefaultOptions())
}

// ZetaReg evaluates the regularised Epstein zeta function, which removes
// the Fourier self-term singularity at y == 0, using DefaultOptions.
func ZetaReg(nu float64, dim int, a, x, y []float64) complex128 {
	return ZetaRegWithOptions(nu, dim, a, x, y, DefaultOptions())
}

// ZetaWithOptions is Zeta with caller-controlled numerical tuning.
func ZetaWithOptions(nu float64, dim int, a, x, y []float64, opts Options) complex128 {
	return evaluate(nu, dim, a, x, y, opts, false)
}

// ZetaRegWithOptions is ZetaReg with caller-controlled numerical tuning.
func ZetaRegWithOptions(nu float64, dim int, a, x, y []float64, opts Options) complex128 {
	return evaluate(nu, dim, a, x, y, opts, true)
}

func evaluate(nu float64, dim int, a, x, y []float64, opts Options, regularized bool) complex128 {
	if dim < 1 {
		panic("epsteinlib: dimension must be >= 1")
	}
	if len(a) != dim*dim {
		panic(fmt.Sprintf("epsteinlib: generator matrix has %d entries, want %d", len(a), dim*dim))
	}
	if len(x) != dim || len(y) != dim {
		panic(fmt.Sprintf("epsteinlib: shift vectors must have length %d", dim))
	}

	isDiagonal := true
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i != j && a[i*dim+j] != 0 {
				isDiagonal = false
			}
		}
	}

	ainv, vol := Invert(dim, a)
	ms := math.Pow(vol, -1/float64(dim))

	aScaled := make([]float64, dim*dim)
	for i := range aScaled {
		aScaled[i] = a[i] * ms
	}
	bScaled := append([]float64(nil), ainv...)
	TransposeInPlace(dim, bScaled)
	for i := range bScaled {
		bScaled[i] /= ms
	}

	xPrime := make([]float64, dim)
	yPrime := make([]float64, dim)
	for i := 0; i < dim; i++ {
		xPrime[i] = x[i] * ms
		yPrime[i] = y[i] / ms
	}

	xTilde := vectorProj(dim, aScaled, bScaled, xPrime)
	yTilde := vectorProj(dim, bScaled, aScaled, yPrime)

	cutoffsReal, cutoffsRec := truncationRadii(dim, aScaled, bScaled, isDiagonal, opts)

	var res complex128
	switch {
	case nu < 1 && math.Abs(nu/2-math.Round(nu/2)) < opts.ProjectionEps:
		if math.Abs(nu) < opts.ProjectionEps && Dot(xTilde, xTilde) == 0 {
			res = -cmplx.Exp(complex(0, -2*math.Pi*Dot(xPrime, yTilde)))
		} else {
			res = 0
		}
	case !regularized && math.Abs(nu-float64(dim)) < opts.ProjectionEps && Dot(yTilde, yTilde) < 1e-64:
		res = complex(math.NaN(), math.NaN())
	default:
		res = evaluateGeneric(nu, dim, aScaled, bScaled, xTilde, yTilde, xPrime, yPrime, y, cutoffsReal, cutoffsRec, vol, ms, opts, regularized)
	}

	return complex(math.Pow(ms, nu), 0) * res
}

func truncationRadii(dim int, aScaled, bScaled []float64, isDiagonal bool, opts Options) (real, rec []int) {
	base := opts.GBound + 0.5
	real = make([]int, dim)
	rec = make([]int, dim)
	if isDiagonal {
		for k := 0; k < dim; k++ {
			diag := math.Abs(aScaled[k*dim+k])
			real[k] = int(math.Floor(base / diag))
			rec[k] = int(math.Floor(base * diag))
		}
		return real, rec
	}
	bNorm := InfNorm(dim, bScaled)
	aNorm := InfNorm(dim, aScaled)
	for k := 0; k < dim; k++ {
		real[k] = int(math.Floor(base * bNorm))
		rec[k] = int(math.Floor(base * aNorm))
	}
	return real, rec
}

// vectorProj projects v into the fundamental cell of the lattice generated
// by m (whose inverse-transpose is mInvT): it computes lattice coordinates
// of v, and if any coordinate falls outside [-0.5, 0.5] it wraps every
// coordinate into that range and re-embeds via m. v already inside the
// cell is returned unchanged (a copy).
func vectorProj(dim int, m, mInvT, v []float64) []float64 {
	vt := make([]float64, dim)
	for i := 0; i < dim; i++ {
		s := 0.0
		for j := 0; j < dim; j++ {
			s += mInvT[dim*j+i] * v[j]
		}
		vt[i] = s
	}

	inRange := true
	for _, c := range vt {
		if c < -0.5 || c > 0.5 {
			inRange = false
			break
		}
	}
	if inRange {
		return append([]float64(nil), v...)
	}

	for i := range vt {
		vt[i] = math.Remainder(vt[i], 1)
	}
	vres := make([]float64, dim)
	for i := 0; i < dim; i++ {
		s := 0.0
		for j := 0; j < dim; j++ {
			s += m[dim*i+j] * vt[j]
		}
		vres[i] = s
	}
	return vres
}

func evaluateGeneric(nu float64, dim int, aScaled, bScaled, xTilde, yTilde, xPrime, yPrime, y []float64, cutoffsReal, cutoffsRec []int, vol, ms float64, opts Options, regularized bool) complex128 {
	bound := assignZArgBound(nu, opts.ProjectionEps)
	boundRec := assignZArgBound(float64(dim)-nu, opts.ProjectionEps)

	vx := make([]float64, dim)
	for i := range vx {
		vx[i] = xPrime[i] - xTilde[i]
	}
	xfactor := cmplx.Exp(complex(0, -2*math.Pi*Dot(vx, yPrime)))

	s1 := sumReal(nu, aScaled, xTilde, yTilde, cutoffsReal, bound, opts)

	// The reciprocal sum's rotation factor uses x' in the regularised path
	// and x̃ in the non-regularised path; the self-term assembly below
	// already follows that split (creg/rot/corrective use x', the bare
	// crandallG self-term uses x̃), so the sum itself must match.
	xArgFourier := xTilde
	if regularized {
		xArgFourier = xPrime
	}
	s2 := sumFourier(float64(dim)-nu, bScaled, xArgFourier, yTilde, cutoffsRec, boundRec, opts)

	if !regularized {
		c := crandallG(float64(dim)-nu, yTilde, 1, boundRec, opts)
		s2 += complex(c, 0) * cmplx.Exp(complex(0, -2*math.Pi*Dot(xTilde, yTilde)))
	} else {
		creg := crandallGReg(float64(dim)-nu, yPrime, 1, opts)
		rot := cmplx.Exp(complex(0, 2*math.Pi*Dot(xPrime, yPrime)))
		if !VecEq(yTilde, yPrime) {
			gTilde := crandallG(float64(dim)-nu, yTilde, 1, boundRec, opts)
			gPrime := crandallG(float64(dim)-nu, yPrime, 1, boundRec, opts)
			corrective := complex(gTilde, 0)*cmplx.Exp(complex(0, -2*math.Pi*Dot(xPrime, yTilde))) -
				complex(gPrime, 0)*cmplx.Exp(complex(0, -2*math.Pi*Dot(xPrime, yPrime)))
			s2 += corrective
		}
		s2 = s2*rot + complex(creg, 0)
		s1 = s1 * rot * xfactor
		xfactor = 1
	}

	res := xfactor * complex(math.Pow(math.Pi, nu/2)/math.Gamma(nu/2), 0) * (s1 + s2)

	if regularized {
		res += resonanceLogCorrection(nu, dim, vol, ms, y, opts)
	}

	return res
}

// resonanceLogCorrection compensates the logarithm introduced by the
// unit-volume rescaling (driver step 2) at the resonance points
// ν = d+2k, where the regularised summand takes its logarithmic branch
// and is evaluated at the rescaled y'.
func resonanceLogCorrection(nu float64, dim int, vol, ms float64, y []float64, opts Options) complex128 {
	diff := nu - float64(dim)
	if diff < -opts.ProjectionEps {
		return 0
	}
	kf := diff / 2
	k := math.Round(kf)
	if math.Abs(kf-k) >= opts.ProjectionEps || k < 0 {
		return 0
	}

	logms2 := math.Log(ms * ms)
	halfDim := float64(dim) / 2
	if k == 0 {
		return complex(math.Pow(math.Pi, halfDim)*logms2/(math.Gamma(halfDim)*vol), 0)
	}

	ySq := Dot(y, y)
	sign := math.Pow(-1, k)
	term := sign / math.Gamma(k+1) * math.Pow(math.Pi, 2*k+halfDim) * math.Pow(ySq, k) * logms2 / (math.Gamma(k+halfDim) * vol)
	return complex(-term, 0)
}

func sumReal(nu float64, aScaled, xTilde, yTilde []float64, radii []int, bound float64, opts Options) complex128 {
	dim := len(radii)
	od := newOdometer(radii)
	l := make([]float64, dim)
	diff := make([]float64, dim)
	var acc kahanSum
	for vec, ok := od.next(); ok; vec, ok = od.next() {
		MatVecInt(dim, aScaled, vec, l)
		rot := cmplx.Exp(complex(0, -2*math.Pi*Dot(l, yTilde)))
		for i := range diff {
			diff[i] = l[i] - xTilde[i]
		}
		g := crandallG(nu, diff, 1, bound, opts)
		acc.Add(rot * complex(g, 0))
	}
	return acc.Result()
}

// sumFourier accumulates the reciprocal-space sum. xArg is the rotation's
// x-coordinate: callers pass x̃ for the non-regularised entry point and x'
// for the regularised one, per the reference algorithm's two call sites.
func sumFourier(nu float64, bScaled, xArg, yTilde []float64, radii []int, boundRec float64, opts Options) complex128 {
	dim := len(radii)
	od := newOdometer(radii)
	k := make([]float64, dim)
	var acc kahanSum
	for vec, ok := od.next(); ok; vec, ok = od.next() {
		if isZeroIntVec(vec) {
			continue
		}
		MatVecInt(dim, bScaled, vec, k)
		for i := range k {
			k[i] += yTilde[i]
		}
		rot := cmplx.Exp(complex(0, -2*math.Pi*Dot(k, xArg)))
		g := crandallG(nu, k, 1, boundRec, opts)
		acc.Add(rot * complex(g, 0))
	}
	return acc.Result()
}
