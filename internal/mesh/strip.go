// Package mesh turns a row of surface height samples into a renderable
// triangle strip. It is pure geometry: N+1 heights become 2*(N+1)
// vertices (surface and floor edge per sample) and N quads between
// consecutive sample pairs, with no dependency on any render backend.
package mesh

// Vertex is one strip vertex in world coordinates with its texture
// coordinate.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Strip holds the vertex and index buffers for a surface strip. Indices
// are laid out as two counter-clockwise triangles per quad and stay
// constant for a given sample count; only vertex Y values change between
// ticks.
type Strip struct {
	Vertices []Vertex
	Indices  []uint16
}

// NewStrip allocates buffers for the given number of surface samples.
func NewStrip(samples int) *Strip {
	if samples < 1 {
		samples = 1
	}
	s := &Strip{
		Vertices: make([]Vertex, 2*samples),
		Indices:  make([]uint16, 0, 6*(samples-1)),
	}
	for q := 0; q < samples-1; q++ {
		top := uint16(2 * q)
		bottom := top + 1
		nextTop := top + 2
		nextBottom := top + 3
		s.Indices = append(s.Indices,
			top, bottom, nextTop,
			bottom, nextBottom, nextTop,
		)
	}
	return s
}

// Update rewrites the vertex buffer from the current heights. Sample i
// produces a surface vertex at (x_i, heights[i]) and a floor vertex at
// (x_i, 0), with x spread evenly across width. The heights slice must
// match the sample count the strip was built for.
func (s *Strip) Update(heights []float64, width float64) {
	n := len(heights)
	if 2*n != len(s.Vertices) {
		return
	}
	spacing := 0.0
	if n > 1 {
		spacing = width / float64(n-1)
	}
	for i := 0; i < n; i++ {
		x := float32(float64(i) * spacing)
		u := float32(0)
		if n > 1 {
			u = float32(i) / float32(n-1)
		}
		s.Vertices[2*i] = Vertex{X: x, Y: float32(heights[i]), U: u, V: 0}
		s.Vertices[2*i+1] = Vertex{X: x, Y: 0, U: u, V: 1}
	}
}

// Quads returns the number of quads in the strip.
func (s *Strip) Quads() int { return len(s.Indices) / 6 }
