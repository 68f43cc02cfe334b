package wave

// tensionBuffered is the double-buffered alternative to the in-place
// tension pass. Transfers are accumulated from start-of-tick state and
// applied in one shot, so no iteration observes a partially updated
// neighbor. Because each unordered sample pair is visited from both
// sides, the effective coupling is symmetric and the numeric trajectory
// differs from the in-place pass; a field runs one variant or the other,
// never both.
func (f *Field) tensionBuffered() {
	n := len(f.heights)
	for i := range f.dh {
		f.dh[i] = 0
		f.dv[i] = 0
	}
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
			f.dv[i] -= dv
			f.dv[k] += dv
			f.dh[i] -= dh
			f.dh[k] += dh
		}
	}
	for i := 0; i < n; i++ {
		f.heights[i] += f.dh[i]
		f.velocities[i] += f.dv[i]
	}
}
