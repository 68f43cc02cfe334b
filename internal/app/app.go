//go:build ebiten

package app

import (
	"image/color"

	"ripple/internal/core"
	"ripple/internal/render"
	"ripple/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Impulse forces injected by mouse presses. Both clear the field's noise
// threshold.
const (
	pressForce = -0.4
	liftForce  = 0.4
)

// Game adapts a surface simulation to the ebiten.Game interface. The
// simulation advances on its own fixed cadence, decoupled from the
// render frame rate.
type Game struct {
	sim     core.Sim
	painter *render.StripPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep

	waterColor color.Color
	bgColor    color.Color
	scale      float64
	hudWidth   int
	paused     bool
	tickOnce   bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale float64, tps, hudWidth int) *Game {
	return &Game{
		sim:        sim,
		painter:    render.NewStripPainter(sim.Samples()),
		overlay:    ui.NewOverlay(sim, scale),
		hud:        ui.NewHUD(sim, hudWidth),
		stepper:    core.NewFixedStep(tps),
		waterColor: color.RGBA{R: 24, G: 96, B: 192, A: 255},
		bgColor:    color.RGBA{R: 10, G: 12, B: 16, A: 255},
		scale:      scale,
		hudWidth:   hudWidth,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}

	g.handleImpulse()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.fieldPixelWidth())
	}

	if g.paused {
		if g.tickOnce {
			g.sim.Step()
			g.tickOnce = false
		}
		return nil
	}
	g.stepper.Advance(g.sim.Step)
	return nil
}

// handleImpulse maps mouse presses over the water view into impulses:
// left presses the surface down, right lifts it.
func (g *Game) handleImpulse() {
	imp, ok := g.sim.(core.Impulser)
	if !ok {
		return
	}
	var force float64
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		force = pressForce
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		force = liftForce
	default:
		return
	}
	mx, _ := ebiten.CursorPosition()
	if mx < 0 || mx >= g.fieldPixelWidth() {
		return
	}
	imp.ApplyImpulse(float64(mx)/g.scale, force)
}

// Draw renders the current surface state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)
	size := g.sim.Size()
	g.painter.Blit(screen, g.sim.Heights(), size, g.waterColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.fieldPixelWidth(), int(size.H*g.scale))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return int(size.W*g.scale) + g.hudWidth, int(size.H * g.scale)
}

func (g *Game) fieldPixelWidth() int {
	return int(g.sim.Size().W * g.scale)
}
