// Package paintballengine implements the activation-spreading engine and
// lead-synset extraction: initial-activation assembly, two-hop
// weighted/impedance-modulated propagation, synset promotion, thresholding,
// and connected-component reduction on the synset graph.
package paintballengine

import (
	"errors"
	"fmt"
)

// ErrInvalidMu is returned when Mu is outside (0,1).
var ErrInvalidMu = errors.New("paintballengine: mu must be in (0,1)")

// Params holds the five core tunables plus the δ thresholds N1/N2, all
// exposed as configuration rather than hardcoded.
type Params struct {
	// Mu (µ) is the decay factor applied once per node hop, in (0,1).
	Mu float64 `yaml:"mu"`
	// Tau0 (τ0) is the minimal seed-activation threshold; T keeps Q0(n) > Tau0.
	Tau0 float64 `yaml:"tau_0"`
	// Epsilon (ε) is the propagation-stop threshold; conventionally Tau0/4.
	Epsilon float64 `yaml:"epsilon"`
	// Tau3 (τ3) is the lead-candidate threshold consulted in ExtractLeads.
	Tau3 float64 `yaml:"tau_3"`
	// Tau4 (τ4) is reserved: accepted and stored, never consulted by this
	// package.
	Tau4 float64 `yaml:"tau_4"`
	// N1 is the δ threshold applied when a synset's size s ≤ 2 (default 1.5).
	N1 float64 `yaml:"n1"`
	// N2 is the δ threshold applied when a synset's size s > 2 (default 2.0).
	N2 float64 `yaml:"n2"`
}

// DefaultParams returns the reference end-to-end scenario parameters; this
// package's tests pass the same values as literals.
func DefaultParams() Params {
	return Params{
		Mu:      0.95,
		Tau0:    0.5,
		Epsilon: 0.125,
		Tau3:    2.5,
		Tau4:    1.0,
		N1:      1.5,
		N2:      2.0,
	}
}

// Validate enforces Mu ∈ (0,1); every other field is accepted as-is, since
// none of them carries a further domain restriction beyond Tau4 being
// merely stored.
func (p Params) Validate() error {
	if p.Mu <= 0 || p.Mu >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidMu, p.Mu)
	}
	return nil
}
