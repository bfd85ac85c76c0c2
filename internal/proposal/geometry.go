package proposal

import "github.com/iburimskiy/valentine/internal/geom"

// GeometryProvider reports the live boxes of the container and both buttons. Frontends
// compute them from the current presentation so a query after a state change sees the new
// button sizes.
type GeometryProvider interface {
	Geometry() geom.Geometry
}

// GeometryFunc adapts a function to GeometryProvider.
type GeometryFunc func() geom.Geometry

func (f GeometryFunc) Geometry() geom.Geometry { return f() }
