// Package solver finds roots of scalar residual functions with Brent's
// bracketing method. Callers may pass estimated counterpart points that do
// not enclose a root; the solver widens them until a sign change is found.
package solver

import (
	"fmt"
	"math"
)

const (
	DefaultAccuracy      = 1e-7
	DefaultMaxIterations = 100
	DefaultMaxExpansions = 50

	// growth of the bracket on every expansion step
	expansionFactor = 1.6
)

// Func is a residual function. The solver looks for x where Func(x) == 0.
// A returned error aborts the search.
type Func func(x float64) (float64, error)

// Option configures a Brent solver.
type Option func(*Brent)

// WithAccuracy sets the residual accuracy. The same value is used as the
// absolute tolerance on the bracket width.
func WithAccuracy(accuracy float64) Option {
	return func(s *Brent) {
		if accuracy > 0 {
			s.accuracy = accuracy
		}
	}
}

// WithMaxIterations caps the number of Brent iterations.
func WithMaxIterations(n int) Option {
	return func(s *Brent) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithMaxExpansions caps the number of bracket expansion steps.
func WithMaxExpansions(n int) Option {
	return func(s *Brent) {
		if n >= 0 {
			s.maxExpansions = n
		}
	}
}

// WithBounds limits where the bracket may be expanded to. Initial points
// outside of the bounds are clamped.
func WithBounds(lower, upper float64) Option {
	return func(s *Brent) {
		if lower < upper {
			s.lower, s.upper = lower, upper
		}
	}
}

// Brent holds the configuration and the run state of one root search.
// A Brent value must not be used by concurrent searches; allocate one per
// goroutine.
type Brent struct {
	name          string
	accuracy      float64
	maxIterations int
	maxExpansions int
	lower         float64
	upper         float64

	iterations  int
	evaluations int
}

// New returns a solver. The name only appears in error messages.
func New(name string, opts ...Option) *Brent {
	s := &Brent{
		name:          name,
		accuracy:      DefaultAccuracy,
		maxIterations: DefaultMaxIterations,
		maxExpansions: DefaultMaxExpansions,
		lower:         math.Inf(-1),
		upper:         math.Inf(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Brent) Name() string { return s.name }

func (s *Brent) Accuracy() float64 { return s.accuracy }

// Iterations returns the Brent iterations spent in the last FindRoot call.
func (s *Brent) Iterations() int { return s.iterations }

// Evaluations returns the residual evaluations spent in the last FindRoot
// call, bracket expansion included.
func (s *Brent) Evaluations() int { return s.evaluations }

func (s *Brent) eval(f Func, x float64) (float64, error) {
	s.evaluations++
	y, err := f(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) {
		return 0, fmt.Errorf("%s: residual is NaN at x=%g: %w", s.name, x, ErrNotConverged)
	}
	return y, nil
}

func (s *Brent) clamp(x float64) float64 {
	return math.Max(s.lower, math.Min(s.upper, x))
}

/*
FindRoot searches the root of f starting from the counterpart points a and b.

	Args:
	    f: residual function
	    a: first counterpart point
	    b: second counterpart point

	Returns:
	    x where |f(x)| <= accuracy, or where the enclosing bracket shrank
	    below the tolerance

	Notes:
	    When f(a) and f(b) have the same sign, the point with the smaller
	    residual is pushed away from the other one by a factor of 1.6
	    until the sign changes.
*/
func (s *Brent) FindRoot(f Func, a, b float64) (float64, error) {
	s.iterations = 0
	s.evaluations = 0

	a, b, fa, fb, err := s.bracket(f, a, b)
	if err != nil {
		return 0, err
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	c, fc := b, fb
	var d, e float64
	for s.iterations = 1; s.iterations <= s.maxIterations; s.iterations++ {
		if sameSign(fb, fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*epsilon*math.Abs(b) + 0.5*s.accuracy
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol || math.Abs(fb) <= s.accuracy {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// inverse quadratic interpolation, secant when only two points
			var p, q float64
			r3 := fb / fa
			if a == c {
				p = 2 * xm * r3
				q = 1 - r3
			} else {
				q = fa / fc
				r := fb / fc
				p = r3 * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (r3 - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		if fb, err = s.eval(f, b); err != nil {
			return 0, err
		}
	}
	s.iterations = s.maxIterations

	return 0, fmt.Errorf("%s: no root within %d iterations, last x=%g f=%g: %w",
		s.name, s.maxIterations, b, fb, ErrNotConverged)
}

// bracket widens [a, b] until f changes its sign between the two points.
func (s *Brent) bracket(f Func, a, b float64) (float64, float64, float64, float64, error) {
	a, b = s.clamp(a), s.clamp(b)
	if a == b {
		w := math.Max(math.Abs(a)*0.1, 1)
		if b = s.clamp(a + w); b == a {
			a = s.clamp(a - w)
		}
	}

	fa, err := s.eval(f, a)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	fb, err := s.eval(f, b)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	for n := 0; sameSign(fa, fb); n++ {
		if n >= s.maxExpansions {
			return 0, 0, 0, 0, fmt.Errorf("%s: no sign change in [%g, %g] after %d expansions: %w",
				s.name, a, b, n, ErrNotConverged)
		}

		moveA := math.Abs(fa) < math.Abs(fb)
		na, nb := s.clamp(a+expansionFactor*(a-b)), s.clamp(b+expansionFactor*(b-a))
		if moveA && na == a {
			moveA = false
		} else if !moveA && nb == b {
			moveA = true
		}

		switch {
		case moveA && na != a:
			a = na
			if fa, err = s.eval(f, a); err != nil {
				return 0, 0, 0, 0, err
			}
		case !moveA && nb != b:
			b = nb
			if fb, err = s.eval(f, b); err != nil {
				return 0, 0, 0, 0, err
			}
		default:
			return 0, 0, 0, 0, fmt.Errorf("%s: no sign change within bounds [%g, %g]: %w",
				s.name, s.lower, s.upper, ErrNotConverged)
		}
	}

	return a, b, fa, fb, nil
}

func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}

// machine epsilon of float64
const epsilon = 2.220446049250313e-16
