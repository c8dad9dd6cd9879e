package geom

import "math"

// Point is a position in screen space. In the terminal renderer one unit is one
// character cell.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Round returns the nearest integer cell coordinates.
func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Circle is a circular hit zone. Aspect stretches the circle horizontally so
// that it stays round on screens whose cells are taller than they are wide.
type Circle struct {
	Center Point
	Radius float64
	Aspect float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	dx := (p.X - c.Center.X) / aspect
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
