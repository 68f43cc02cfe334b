package wave

// SettleResult captures telemetry from a deterministic impulse scenario
// used for decay-rate tuning.
type SettleResult struct {
	// SettleTicks is the tick at which the field first reported at-rest
	// again, or the tick budget if it never did.
	SettleTicks int
	// Settled reports whether the field reached exact rest within the
	// budget.
	Settled bool
	// PeakEnergy is the largest observed sum of absolute velocities.
	PeakEnergy float64
	// PeakAmplitude is the largest observed offset from the rest level.
	PeakAmplitude float64
}

// Settle runs a deterministic scenario: a single impulse of the given
// force at the field centre, then ticks until the surface is back at rest
// or maxTicks have elapsed. The helper builds its own field, so callers
// can sweep configurations in parallel.
func Settle(cfg Config, force float64, maxTicks int) (SettleResult, error) {
	f, err := New(cfg)
	if err != nil {
		return SettleResult{}, err
	}
	f.ApplyImpulse(cfg.Width/2, force)

	res := SettleResult{SettleTicks: maxTicks}
	for tick := 1; tick <= maxTicks; tick++ {
		f.Step()
		if e := f.Energy(); e > res.PeakEnergy {
			res.PeakEnergy = e
		}
		if a := f.MaxDisplacement(); a > res.PeakAmplitude {
			res.PeakAmplitude = a
		}
		if f.AtRest() {
			res.SettleTicks = tick
			res.Settled = true
			break
		}
	}
	return res, nil
}
