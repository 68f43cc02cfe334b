//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"ripple/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the water view.
type HUD struct {
	sim     core.Sim
	width   int
	panel   *ebiten.Image
	lastH   int
	offsetX int

	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	pixel *ebiten.Image
}

type hudControlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	intValue   int
	hasValue   bool
	minusRect  image.Rectangle
	plusRect   image.Rectangle
}

const (
	hudRowHeight  = 36
	hudRowTop     = 30
	hudButtonSize = 14
	hudMargin     = 10
)

// NewHUD constructs a HUD for the provided simulation and panel width.
// A zero width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		y := hudRowTop + i*hudRowHeight + 12
		h.controls[i].minusRect = image.Rect(hudMargin, y, hudMargin+hudButtonSize, y+hudButtonSize)
		h.controls[i].plusRect = image.Rect(h.width-hudMargin-hudButtonSize, y, h.width-hudMargin, y+hudButtonSize)
	}
}

// Update refreshes control values from the simulation and handles HUD
// interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = panelOffsetX
	h.refreshControlValues()
	h.handleInput()
}

func (h *HUD) refreshControlValues() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, found := paramMap[state.control.Key]
		if !found {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = param.Value
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = fmt.Sprintf("%.2f", parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(ctrl.Step)
		if step == 0 {
			step = 1
		}
		target := state.intValue + direction*step
		if ctrl.HasMin && float64(target) < ctrl.Min {
			target = int(ctrl.Min)
		}
		if ctrl.HasMax && float64(target) > ctrl.Max {
			target = int(ctrl.Max)
		}
		h.intSetter.SetIntParameter(ctrl.Key, target)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := ctrl.Step
		if step == 0 {
			step = 0.1
		}
		target := state.floatValue + float64(direction)*step
		if ctrl.HasMin && target < ctrl.Min {
			target = ctrl.Min
		}
		if ctrl.HasMax && target > ctrl.Max {
			target = ctrl.Max
		}
		h.floatSetter.SetFloatParameter(ctrl.Key, target)
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastH != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastH = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.sim.Name(), basicfont.Face7x13, hudMargin, 16, color.White)
	for i := range h.controls {
		state := &h.controls[i]
		y := hudRowTop + i*hudRowHeight
		text.Draw(h.panel, state.control.Label, basicfont.Face7x13, hudMargin, y+8, color.RGBA{R: 170, G: 180, B: 190, A: 255})
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
		text.Draw(h.panel, state.value, basicfont.Face7x13, hudMargin+hudButtonSize+10, y+24, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 48, G: 52, B: 60, A: 255})
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+4, r.Max.Y-3, color.White)
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
