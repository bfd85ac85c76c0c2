package geom

// Box is an axis-aligned rectangle in pixels (or cells for the terminal frontend).
type Box struct {
	X, Y float64
	W, H float64
}

// Offset is a position relative to a container origin.
type Offset struct {
	Top  float64
	Left float64
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Overlaps reports whether both the horizontal and vertical intervals intersect.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W &&
		b.X+b.W > o.X &&
		b.Y < o.Y+o.H &&
		b.Y+b.H > o.Y
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Relative translates b into the coordinate space whose origin is the top-left of parent.
func (b Box) Relative(parent Box) Box {
	return Box{X: b.X - parent.X, Y: b.Y - parent.Y, W: b.W, H: b.H}
}

// Center returns the midpoint of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Scale grows or shrinks the box around its center.
func (b Box) Scale(s float64) Box {
	cx, cy := b.Center()
	w, h := b.W*s, b.H*s
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// At places a box of the same size at the given offset inside parent.
func (b Box) At(parent Box, off Offset) Box {
	return Box{X: parent.X + off.Left, Y: parent.Y + off.Top, W: b.W, H: b.H}
}
