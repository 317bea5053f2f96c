// Package config holds the CLI-level planner parameters: the kind of
// process-wide setup the teacher's globals package performed with
// InitGlobals. Unlike the teacher, the steer package itself never reads
// these values directly — every predicate and builder in steer receives
// its curvature/sharpness parameters explicitly through *steer.StateSpace,
// so two CLI invocations configured differently can share the same
// process without interfering with each other.
package config

import "fmt"

const (
	// DefaultDiscretization is the forward-integration step used by the
	// discretizer when the caller does not supply one.
	DefaultDiscretization float64 = 0.1
)

// Params are the construction parameters for a steer.StateSpace.
type Params struct {
	KappaMax        float64
	SigmaMax        float64
	Discretization  float64
	Verbose         bool
}

// Default returns the parameter set used by the CLI when no flags override it.
func Default() Params {
	return Params{
		KappaMax:       1.0,
		SigmaMax:       1.0,
		Discretization: DefaultDiscretization,
	}
}

// Validate reports a misconfiguration before any planner construction is attempted.
func (p Params) Validate() error {
	if p.KappaMax <= 0 {
		return fmt.Errorf("config: kappa_max must be positive, got %g", p.KappaMax)
	}
	if p.SigmaMax <= 0 {
		return fmt.Errorf("config: sigma_max must be positive, got %g", p.SigmaMax)
	}
	if p.Discretization <= 0 {
		return fmt.Errorf("config: discretization must be positive, got %g", p.Discretization)
	}
	return nil
}
