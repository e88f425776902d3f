// Package epsteinlib evaluates the Epstein zeta function and its
// regularised variant over real lattices of arbitrary dimension, using
// Crandall's real-space/reciprocal-space decomposition.
//
// The two entry points callers need are Zeta and ZetaReg. Everything else
// in the package is the interlocked numerical machinery that backs them:
// a small dense linear-algebra kernel, a Gautschi-style incomplete gamma
// evaluator, the Crandall summand and its regularised counterpart, and the
// driver that ties them together.
package epsteinlib
