package core

// Extent describes the world-space dimensions of a simulated surface.
type Extent struct {
	W float64
	H float64
}

// Sim defines the minimal contract a surface simulation must implement.
type Sim interface {
	Name() string
	Size() Extent
	Samples() int
	Reset()
	Step()
	Heights() []float64
}

// Impulser is implemented by simulations that accept external velocity
// injections at a horizontal position.
type Impulser interface {
	ApplyImpulse(x, force float64)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
