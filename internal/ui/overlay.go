//go:build ebiten

package ui

import (
	"image/color"

	"ripple/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// velocityBarGain stretches the per-sample velocity bars to a visible
// pixel height.
const velocityBarGain = 40

type velocityProvider interface {
	Velocities() []float64
}

type restLevelProvider interface {
	RestLevel() float64
}

// Overlay draws optional debugging visuals on top of the water surface.
type Overlay struct {
	sim      core.Sim
	scale    float64
	showRest bool
	showVel  bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale float64) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers: 1 for the rest level line, 2 for
// velocity bars.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRest = !o.showRest
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVel = !o.showVel
	}
}

// Draw renders the enabled overlay layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showRest {
		o.drawRestLine(screen, size)
	}
	if o.showVel {
		o.drawVelocityBars(screen, size)
	}
}

func (o *Overlay) drawRestLine(screen *ebiten.Image, size core.Extent) {
	rest := size.H / 2
	if p, ok := o.sim.(restLevelProvider); ok {
		rest = p.RestLevel()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.W*o.scale, 1)
	op.GeoM.Translate(0, (size.H-rest)*o.scale)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 220, B: 230, A: 160})
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawVelocityBars(screen *ebiten.Image, size core.Extent) {
	p, ok := o.sim.(velocityProvider)
	if !ok {
		return
	}
	vels := p.Velocities()
	n := len(vels)
	if n == 0 {
		return
	}
	spacing := size.W * o.scale / float64(n)
	mid := size.H * o.scale / 2
	barW := spacing - 1
	if barW < 1 {
		barW = 1
	}
	for i, v := range vels {
		h := v * o.scale * velocityBarGain
		if h == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		if h > 0 {
			op.GeoM.Scale(barW, h)
			op.GeoM.Translate(float64(i)*spacing, mid-h)
		} else {
			op.GeoM.Scale(barW, -h)
			op.GeoM.Translate(float64(i)*spacing, mid)
		}
		op.ColorScale.ScaleWithColor(color.RGBA{R: 240, G: 120, B: 40, A: 200})
		screen.DrawImage(o.pixel, op)
	}
}
