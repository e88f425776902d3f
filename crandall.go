package epsteinlib

import "math"

// assignZArgBound picks the r² threshold above which crandallG switches to
// its asymptotic branch, as a step function of ν chosen to keep the
// asymptotic expansion accurate to machine precision. Unlike the reference
// algorithm (which falls back to a large finite bound for |ν| outside its
// tabulated ranges), this never uses the asymptotic branch at all once ν
// leaves every tabulated range.
func assignZArgBound(nu, eps float64) float64 {
	switch {
	case (nu > 2-eps && nu < 2+eps) || (nu > 4-eps && nu < 4+eps):
		return math.Pi * 2.6 * 2.6
	case nu > 1.6 && nu < 4.4:
		return math.Pi * 2.99 * 2.99
	case nu > -3 && nu < 8:
		return math.Pi * 3.15 * 3.15
	case nu > -70 && nu < 40:
		return math.Pi * 3.35 * 3.35
	case nu > -600 && nu < 80:
		return math.Pi * 3.5 * 3.5
	default:
		return math.Inf(1)
	}
}

// crandallG evaluates Crandall's summand
//
//	g(ν, z, p, bound) = Γ(ν/2, π p² |z|²) / (π p² |z|²)^(ν/2)
//
// with a removable-singularity short-circuit at z ≈ 0 and an asymptotic
// branch once the argument exceeds bound.
func crandallG(nu float64, z []float64, p, bound float64, opts Options) float64 {
	r2 := math.Pi * p * p * Dot(z, z)
	switch {
	case r2 < 0x1p-62:
		return -2 / nu
	case r2 > bound:
		return math.Exp(-r2) * (-2 + 2*r2 + nu) / (2 * r2 * r2)
	default:
		return upperGamma(nu/2, r2, opts) / math.Pow(r2, nu/2)
	}
}

// crandallGRegTaylor is the 10-term Taylor series of g_reg in r² about 0,
// used for the k=0 resonance branch when r² is small enough that the
// direct log-gamma formula would lose precision to cancellation.
var crandallGRegTaylor = [10]float64{
	-0.57721566490153286555, 1, -0.25,
	0.05555555555555555, -0.010416666666666666, 0.0016666666666666668,
	-0.0002314814814814815, 0.00002834467120181406, -3.1001984126984127e-6,
	3.0619243582206544e-7,
}

// crandallGRegResonance evaluates the regularised summand at the special
// points s = -2k (equivalently ν = d+2k), where the direct formula
// -Γ(s/2)·γ*(s/2, r²) has a removable singularity.
func crandallGRegResonance(s, r2, k, p float64, opts Options) float64 {
	const taylorCutoff = 0.1 * 0.1 * math.Pi
	var g float64
	switch {
	case s == 0 && r2 < taylorCutoff:
		rp := 1.0
		for _, c := range crandallGRegTaylor {
			g += c * rp
			rp *= r2
		}
	case r2 == 0:
		g = 1 / k
	default:
		g = math.Pow(r2, k) * (upperGamma(-k, r2, opts) + (math.Pow(-1, k)/math.Gamma(k+1))*math.Log(r2))
	}
	g -= math.Pow(r2, k) * math.Log(p*p)
	return g
}

// crandallGReg evaluates the regularised Crandall summand
//
//	g_reg(s, z, p) = -Γ(s/2)·γ*(s/2, π p² |z|²)
//
// with the resonance branch substituted whenever s = -2k for a
// non-negative integer k.
func crandallGReg(s float64, z []float64, p float64, opts Options) float64 {
	r2 := math.Pi * p * p * Dot(z, z)
	k := -math.Round(s / 2)
	if s < 1 && s == -2*k {
		return crandallGRegResonance(s, r2, k, p, opts)
	}
	return -math.Gamma(s/2) * gammaStar(s/2, r2, opts)
}
