package wave

import (
	"math"

	"ripple/internal/core"
)

// Empirical tuning constants. These are fixed engineering choices carried
// as-is; the target is a plausible-looking surface, not physical accuracy.
const (
	// velocitySpread and heightSpread set how much of a height
	// difference a sample exchanges with one neighbor per tick.
	velocitySpread = 0.125
	heightSpread   = 0.0625
	// springStiffness pulls samples back toward the rest level.
	springStiffness = 0.01
	// restEpsilon is the combined displacement+velocity magnitude under
	// which a sample snaps to exact rest.
	restEpsilon = 0.01
	// impulseThreshold drops impulses too weak to matter.
	impulseThreshold = 0.03
	// impulseRadius is how many samples to each side of the mapped
	// index an impulse excites.
	impulseRadius = 10
)

// Field simulates the vertical displacement of a liquid surface as a
// horizontal chain of spring-coupled mass points. All mutation is
// synchronous and single-threaded; callers wanting concurrent access must
// guard the whole field with one lock, since every pass touches
// overlapping ranges of both arrays.
type Field struct {
	cfg  Config
	rest float64

	heights    []float64
	velocities []float64

	// scratch deltas for the buffered tension variant
	dh []float64
	dv []float64
}

// New returns a Field at rest for the provided configuration.
func New(cfg Config) (*Field, error) {
	f := &Field{}
	if err := f.Configure(cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Configure validates cfg and applies it. Any change to the current
// configuration reallocates both state arrays and returns the surface to
// rest; reconfiguring with identical values preserves the wave state.
func (f *Field) Configure(cfg Config) error {
	if cfg.Tension == "" {
		cfg.Tension = TensionInPlace
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg == f.cfg && f.heights != nil {
		return nil
	}
	f.cfg = cfg
	f.rest = cfg.Height / 2
	f.heights = make([]float64, cfg.Samples)
	f.velocities = make([]float64, cfg.Samples)
	if cfg.Tension == TensionBuffered {
		f.dh = make([]float64, cfg.Samples)
		f.dv = make([]float64, cfg.Samples)
	} else {
		f.dh, f.dv = nil, nil
	}
	f.Reset()
	return nil
}

// Name returns the simulation identifier.
func (f *Field) Name() string {
	if f.cfg.Tension == TensionBuffered {
		return "ripple-buffered"
	}
	return "ripple"
}

// Size reports the field dimensions in world units.
func (f *Field) Size() core.Extent {
	return core.Extent{W: f.cfg.Width, H: f.cfg.Height}
}

// Samples reports the number of surface samples.
func (f *Field) Samples() int { return len(f.heights) }

// Heights exposes the live displacement array. The mesh collaborator
// re-reads it after every tick.
func (f *Field) Heights() []float64 { return f.heights }

// Velocities exposes the live velocity array.
func (f *Field) Velocities() []float64 { return f.velocities }

// RestLevel returns the height every sample relaxes toward, half the
// field height.
func (f *Field) RestLevel() float64 { return f.rest }

// DecayRate returns the active damping tunable.
func (f *Field) DecayRate() float64 { return f.cfg.DecayRate }

// Reset returns every sample to the rest level with zero velocity.
func (f *Field) Reset() {
	for i := range f.heights {
		f.heights[i] = f.rest
		f.velocities[i] = 0
	}
}

// AtRest reports whether the settled-field fast path applies: every
// scanned velocity is exactly zero. The scan deliberately stops one
// sample short of the end, matching the original solver's range.
func (f *Field) AtRest() bool {
	for i := 0; i < len(f.velocities)-1; i++ {
		if f.velocities[i] != 0 {
			return false
		}
	}
	return true
}

// Step advances the simulation by one fixed tick: a tension pass that
// propagates displacement between neighbors, then a restoring pass that
// pulls each sample back toward the rest level. A settled field skips
// both passes.
func (f *Field) Step() {
	if f.AtRest() {
		return
	}
	if f.cfg.Tension == TensionBuffered {
		f.tensionBuffered()
	} else {
		f.tension()
	}
	f.restore()
}

// tension exchanges force between each sample and its in-range neighbors
// at offsets -2, -1, +1, +2, proportional to their height difference.
// The pass runs in place: later iterations observe partially updated
// neighbor state. That saves a scratch buffer at the cost of exactness,
// which is fine for a surface that only has to look right. Edge samples
// simply have fewer neighbors; there is no wraparound.
func (f *Field) tension() {
	n := len(f.heights)
	for i := 0; i < n; i++ {
		for j := -2; j <= 2; j++ {
			if j == 0 {
				continue
			}
			k := i + j
			if k < 0 || k >= n {
				continue
			}
			diff := f.heights[i] - f.heights[k]
			dv := diff * velocitySpread
			dh := diff * heightSpread
			f.velocities[i] -= dv
			f.velocities[k] += dv
			f.heights[i] -= dh
			f.heights[k] += dh
		}
	}
}

// restore applies a damped linear spring toward the rest level, snapping
// settled samples to exact rest so the whole field can reach the AtRest
// fast path instead of oscillating forever at tiny amplitudes.
func (f *Field) restore() {
	decay := 1 - f.cfg.DecayRate/10
	for i := range f.heights {
		diff := f.heights[i] - f.rest
		if math.Abs(f.velocities[i])+math.Abs(diff) < restEpsilon {
			f.heights[i] = f.rest
			f.velocities[i] = 0
			continue
		}
		f.velocities[i] -= diff * springStiffness
		f.velocities[i] *= decay
		f.heights[i] += f.velocities[i]
	}
}

// ApplyImpulse adds force to the velocity of every sample within
// impulseRadius of the sample nearest x. Impulses below the noise
// threshold are dropped; positions outside the field clamp their affected
// range into bounds, which may leave it empty.
func (f *Field) ApplyImpulse(x, force float64) {
	if math.Abs(force) < impulseThreshold {
		return
	}
	n := len(f.velocities)
	if n == 0 {
		return
	}
	idx := 0
	if n > 1 && f.cfg.Width > 0 {
		spacing := f.cfg.Width / float64(n-1)
		idx = int(math.Floor(x / spacing))
	}
	lo := idx - impulseRadius
	hi := idx + impulseRadius
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	for k := lo; k <= hi; k++ {
		f.velocities[k] += force
	}
}

// Energy returns the sum of absolute sample velocities, the decay metric
// used by the sweep tool and the tests.
func (f *Field) Energy() float64 {
	total := 0.0
	for _, v := range f.velocities {
		total += math.Abs(v)
	}
	return total
}

// MaxDisplacement returns the largest absolute offset from the rest level.
func (f *Field) MaxDisplacement() float64 {
	peak := 0.0
	for _, h := range f.heights {
		if d := math.Abs(h - f.rest); d > peak {
			peak = d
		}
	}
	return peak
}

func init() {
	// FromMap never yields values Validate rejects.
	core.Register("ripple", func(cfg map[string]string) core.Sim {
		f, _ := New(FromMap(cfg))
		return f
	})
	core.Register("ripple-buffered", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Tension = TensionBuffered
		f, _ := New(c)
		return f
	})
}
