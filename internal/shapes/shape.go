// Package shapes holds the solid primitives whose principal moments of
// inertia can be computed in closed form.
package shapes

// Moments are the principal moments of inertia. Off-diagonal products are
// always zero for the shapes in this package.
type Moments struct {
	Ixx, Iyy, Izz float32
}

// Field is one user-supplied quantity of a shape. Dest points into the
// shape record so it can be loaded in place.
type Field struct {
	Key    string
	Prompt string
	Dest   *float32
}

// Shape is a solid body with uniform density centred on the body frame.
type Shape interface {
	Name() string
	Fields() []Field
	Moments() Moments
}

func sq(v float32) float32 {
	return v * v
}
