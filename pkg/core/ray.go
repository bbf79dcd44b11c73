package core

// Ray represents a ray with an origin point and direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both origin and direction. The direction is not
// renormalized, so t values stay comparable across coordinate frames.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
