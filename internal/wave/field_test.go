package wave

import (
	"errors"
	"slices"
	"testing"

	"ripple/internal/core"
)

// testConfig uses a width that makes sample spacing exactly 1 and a
// strong decay rate so settling scenarios finish quickly.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Samples = 64
	cfg.Width = 63
	cfg.Height = 6
	cfg.DecayRate = 0.3
	return cfg
}

func TestRestFieldUnchanged(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	heights := append([]float64(nil), f.Heights()...)
	for i := 0; i < 500; i++ {
		f.Step()
	}
	if !slices.Equal(heights, f.Heights()) {
		t.Fatal("resting field must stay exactly unchanged")
	}
	for i, v := range f.Velocities() {
		if v != 0 {
			t.Fatalf("resting field grew velocity %v at sample %d", v, i)
		}
	}
}

func TestEnergyDecaysToExactRest(t *testing.T) {
	cfg := testConfig()
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f.ApplyImpulse(cfg.Width/2, 0.25)
	if f.Energy() == 0 {
		t.Fatal("impulse must inject energy")
	}

	prev := f.Energy()
	settled := false
	for tick := 1; tick <= 20000; tick++ {
		f.Step()
		if tick%200 == 0 {
			e := f.Energy()
			if e > prev {
				t.Fatalf("energy grew from %v to %v around tick %d", prev, e, tick)
			}
			prev = e
		}
		if f.AtRest() {
			settled = true
			break
		}
	}
	if !settled {
		t.Fatal("field did not settle within 20000 ticks")
	}
	if f.Energy() != 0 {
		t.Fatalf("settled field still has energy %v", f.Energy())
	}
	rest := f.RestLevel()
	for i, h := range f.Heights() {
		if h != rest {
			t.Fatalf("settled sample %d at height %v, want exactly %v", i, h, rest)
		}
	}
}

func TestSnapToRestIsExact(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	rest := f.RestLevel()
	f.Heights()[10] = rest + 0.004
	f.Velocities()[10] = 0.003

	f.Step()

	for i, h := range f.Heights() {
		if h != rest {
			t.Fatalf("sample %d height %v, want exactly %v after snap", i, h, rest)
		}
	}
	for i, v := range f.Velocities() {
		if v != 0 {
			t.Fatalf("sample %d velocity %v, want exactly 0 after snap", i, v)
		}
	}
}

func TestImpulseLocalityAfterOneTick(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	rest := f.RestLevel()
	const k = 20
	f.Velocities()[k] = 0.2

	f.Step()

	if f.Heights()[k] == rest {
		t.Fatal("excited sample must move")
	}
	for i, h := range f.Heights() {
		if i >= k-2 && i <= k+2 {
			continue
		}
		if h != rest {
			t.Fatalf("sample %d displaced to %v after one tick, expected locality bound", i, h)
		}
	}
}

func TestBufferedTensionLocality(t *testing.T) {
	cfg := testConfig()
	cfg.Tension = TensionBuffered
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rest := f.RestLevel()
	const k = 30
	f.Heights()[k] = rest + 1

	f.tensionBuffered()

	for i := range f.Heights() {
		if i >= k-2 && i <= k+2 {
			continue
		}
		if f.Heights()[i] != rest {
			t.Fatalf("buffered pass displaced sample %d", i)
		}
		if f.Velocities()[i] != 0 {
			t.Fatalf("buffered pass accelerated sample %d", i)
		}
	}
	if f.Heights()[k] == rest+1 {
		t.Fatal("buffered pass must spread the bump")
	}
}

func TestBoundariesDoNotWrap(t *testing.T) {
	cfg := testConfig()
	cfg.Tension = TensionBuffered
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rest := f.RestLevel()
	n := f.Samples()
	f.Heights()[0] = rest + 1

	f.tensionBuffered()

	for i := n - 3; i < n; i++ {
		if f.Heights()[i] != rest || f.Velocities()[i] != 0 {
			t.Fatalf("edge bump wrapped around to sample %d", i)
		}
	}

	// A velocity kick on the first sample moves nothing else in one tick.
	g, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	g.Velocities()[0] = 0.2
	g.Step()
	for i := 1; i < g.Samples(); i++ {
		if g.Heights()[i] != rest {
			t.Fatalf("left-edge kick displaced sample %d after one tick", i)
		}
	}
}

func TestTinyFieldsStep(t *testing.T) {
	for _, samples := range []int{1, 2, 3, 5} {
		cfg := testConfig()
		cfg.Samples = samples
		f, err := New(cfg)
		if err != nil {
			t.Fatalf("samples=%d: %v", samples, err)
		}
		for i := range f.Velocities() {
			f.Velocities()[i] = 0.1
		}
		for i := 0; i < 100; i++ {
			f.Step()
		}
	}
}

func TestEarlyExitIgnoresLastSample(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	last := f.Samples() - 1
	f.Velocities()[last] = 0.5
	if !f.AtRest() {
		t.Fatal("rest scan must stop one sample short of the end")
	}

	heights := append([]float64(nil), f.Heights()...)
	f.Step()
	if !slices.Equal(heights, f.Heights()) {
		t.Fatal("skipped tick must not touch heights")
	}
	if f.Velocities()[last] != 0.5 {
		t.Fatal("skipped tick must not touch velocities")
	}
}

func TestImpulseThreshold(t *testing.T) {
	cfg := testConfig()
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f.ApplyImpulse(cfg.Width/2, 0.02)
	for i, v := range f.Velocities() {
		if v != 0 {
			t.Fatalf("sub-threshold impulse moved sample %d", i)
		}
	}

	f.ApplyImpulse(cfg.Width/2, 0.05)
	// x=31.5 maps to index 31 with unit spacing; radius 10 covers 21..41.
	for i, v := range f.Velocities() {
		if i >= 21 && i <= 41 {
			if v != 0.05 {
				t.Fatalf("sample %d velocity %v, want 0.05", i, v)
			}
			continue
		}
		if v != 0 {
			t.Fatalf("impulse leaked to sample %d", i)
		}
	}
}

func TestImpulseRangeClamping(t *testing.T) {
	cfg := testConfig()
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	n := f.Samples()

	f.ApplyImpulse(0, 0.05)
	for i, v := range f.Velocities() {
		if i <= 10 {
			if v != 0.05 {
				t.Fatalf("left-edge impulse missed sample %d", i)
			}
			continue
		}
		if v != 0 {
			t.Fatalf("left-edge impulse leaked to sample %d", i)
		}
	}

	f.Reset()
	f.ApplyImpulse(cfg.Width, 0.05)
	for i, v := range f.Velocities() {
		if i >= n-1-10 {
			if v != 0.05 {
				t.Fatalf("right-edge impulse missed sample %d", i)
			}
			continue
		}
		if v != 0 {
			t.Fatalf("right-edge impulse leaked to sample %d", i)
		}
	}

	f.Reset()
	f.ApplyImpulse(-1000, 0.05)
	f.ApplyImpulse(cfg.Width*10, 0.05)
	for i, v := range f.Velocities() {
		if v != 0 {
			t.Fatalf("far out-of-range impulse moved sample %d", i)
		}
	}
}

func TestReconfigureResets(t *testing.T) {
	cfg := testConfig()
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f.ApplyImpulse(cfg.Width/2, 0.25)
	for i := 0; i < 10; i++ {
		f.Step()
	}

	next := cfg
	next.Samples = 32
	if err := f.Configure(next); err != nil {
		t.Fatal(err)
	}
	if f.Samples() != 32 {
		t.Fatalf("got %d samples, want 32", f.Samples())
	}
	rest := f.RestLevel()
	for i := range f.Heights() {
		if f.Heights()[i] != rest || f.Velocities()[i] != 0 {
			t.Fatalf("reconfigured sample %d not at rest", i)
		}
	}

	// Reconfiguring with identical values must preserve the wave state.
	f.ApplyImpulse(next.Width/2, 0.25)
	f.Step()
	heights := append([]float64(nil), f.Heights()...)
	if err := f.Configure(next); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(heights, f.Heights()) {
		t.Fatal("no-op reconfigure discarded wave state")
	}
}

func TestConfigureRejectsInvalidArguments(t *testing.T) {
	f, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	bad := []Config{
		{Samples: 0, Width: 10, Height: 5},
		{Samples: -3, Width: 10, Height: 5},
		{Samples: 10, Width: -1, Height: 5},
		{Samples: 10, Width: 10, Height: -1},
		{Samples: 10, Width: 10, Height: 5, DecayRate: -0.1},
		{Samples: 10, Width: 10, Height: 5, Tension: "psychic"},
	}
	for _, cfg := range bad {
		err := f.Configure(cfg)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("config %+v: got %v, want ErrInvalidArgument", cfg, err)
		}
	}
	if f.Samples() != testConfig().Samples {
		t.Fatal("failed configure must leave the field untouched")
	}
}

func TestVariantsDiverge(t *testing.T) {
	cfg := testConfig()
	inplace, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Tension = TensionBuffered
	buffered, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	inplace.ApplyImpulse(cfg.Width/2, 0.25)
	buffered.ApplyImpulse(cfg.Width/2, 0.25)
	for i := 0; i < 10; i++ {
		inplace.Step()
		buffered.Step()
	}
	if slices.Equal(inplace.Heights(), buffered.Heights()) {
		t.Fatal("tension variants should produce different trajectories")
	}
}

func TestParameterSetters(t *testing.T) {
	cfg := testConfig()
	f, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f.ApplyImpulse(cfg.Width/2, 0.25)
	f.Step()
	heights := append([]float64(nil), f.Heights()...)

	if !f.SetFloatParameter("decay_rate", 0.5) {
		t.Fatal("decay rate must be adjustable")
	}
	if f.DecayRate() != 0.3 {
		t.Fatalf("decay rate %v, want clamp to 0.3", f.DecayRate())
	}
	if !slices.Equal(heights, f.Heights()) {
		t.Fatal("decay adjustment must not reset the surface")
	}

	if f.SetFloatParameter("viscosity", 1) {
		t.Fatal("unknown float parameter accepted")
	}
	if f.SetIntParameter("cells", 10) {
		t.Fatal("unknown int parameter accepted")
	}

	if !f.SetIntParameter("samples", 128) {
		t.Fatal("sample count must be adjustable")
	}
	if f.Samples() != 128 {
		t.Fatalf("got %d samples, want 128", f.Samples())
	}
	for i := range f.Velocities() {
		if f.Velocities()[i] != 0 {
			t.Fatal("sample count change must reset the surface")
		}
	}
}

func TestRegisteredFactories(t *testing.T) {
	factory, ok := core.Sims()["ripple"]
	if !ok {
		t.Fatal("ripple factory not registered")
	}
	sim := factory(map[string]string{"samples": "10"})
	if sim.Name() != "ripple" {
		t.Fatalf("got name %q", sim.Name())
	}
	if sim.Samples() != 10 {
		t.Fatalf("factory ignored samples option, got %d", sim.Samples())
	}

	factory, ok = core.Sims()["ripple-buffered"]
	if !ok {
		t.Fatal("ripple-buffered factory not registered")
	}
	if name := factory(nil).Name(); name != "ripple-buffered" {
		t.Fatalf("got name %q", name)
	}
}
