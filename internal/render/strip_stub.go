//go:build !ebiten

package render

// StripPainter is a no-op placeholder for headless builds.
type StripPainter struct{}

// NewStripPainter returns a stub painter in the headless build.
func NewStripPainter(int) *StripPainter { return &StripPainter{} }

// Blit is a no-op in the headless build.
func (p *StripPainter) Blit(...any) {}
