// Package lds implements a deterministic low-discrepancy point sampler
// (Pop() (x, y); Reseed(seed)). It is test tooling, not a core algorithm;
// within this module only its own tests exercise it.
//
// The generator is a 2D additive recurrence whose per-step increments are
// drawn from a SplitMix64 state, not a fixed Weyl/Kronecker step.
package lds
