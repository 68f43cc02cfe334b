//go:build ebiten

package render

import (
	"image/color"

	"ripple/internal/core"
	"ripple/internal/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

// StripPainter draws the water surface strip with DrawTriangles, reusing
// its vertex buffers between frames.
type StripPainter struct {
	strip *mesh.Strip
	verts []ebiten.Vertex
	white *ebiten.Image
}

// NewStripPainter allocates a painter for the given sample count.
func NewStripPainter(samples int) *StripPainter {
	p := &StripPainter{white: ebiten.NewImage(1, 1)}
	p.white.Fill(color.White)
	p.resize(samples)
	return p
}

func (p *StripPainter) resize(samples int) {
	p.strip = mesh.NewStrip(samples)
	p.verts = make([]ebiten.Vertex, len(p.strip.Vertices))
}

// Blit rebuilds the strip from the current heights and draws it. The
// painter reallocates automatically if the sample count changed. World y
// grows upward while screen y grows downward, so vertices are flipped
// against the field height.
func (p *StripPainter) Blit(dst *ebiten.Image, heights []float64, size core.Extent, col color.Color, scale float64) {
	if len(heights) == 0 {
		return
	}
	if 2*len(heights) != len(p.verts) {
		p.resize(len(heights))
	}
	p.strip.Update(heights, size.W)

	r, g, b, a := col.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff
	for i, v := range p.strip.Vertices {
		p.verts[i] = ebiten.Vertex{
			DstX:   v.X * float32(scale),
			DstY:   (float32(size.H) - v.Y) * float32(scale),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	dst.DrawTriangles(p.verts, p.strip.Indices, p.white, nil)
}
