// Tropical weight arithmetic. lvlfst fixes one semiring for the whole
// module: costs combine by addition along a path and by minimum across
// alternative paths, with +Inf standing for "no path".

package fst

import "math"

// Weight is a cost in the tropical semiring: smaller is better.
type Weight float64

// One returns the multiplicative identity, cost 0.
func One() Weight { return 0 }

// Zero returns the additive identity, +Inf: the weight of no path.
func Zero() Weight { return Weight(math.Inf(1)) }

// Times extends a path: tropical multiplication is ordinary addition.
// Zero is absorbing (anything plus +Inf stays +Inf).
func (w Weight) Times(v Weight) Weight { return w + v }

// Plus combines alternative paths: tropical addition is min.
// Zero is neutral.
func (w Weight) Plus(v Weight) Weight {
	if v < w {
		return v
	}

	return w
}

// IsZero reports whether w is the additive identity +Inf.
func (w Weight) IsZero() bool { return math.IsInf(float64(w), 1) }

// badWeight reports values the mutators refuse: NaN poisons every
// comparison, -Inf breaks absorption (Zero.Times(-Inf) would be NaN).
func badWeight(w Weight) bool {
	f := float64(w)

	return math.IsNaN(f) || math.IsInf(f, -1)
}
