package geom

import "math"

// Geometry holds every fixed screen measurement the game needs. The defaults
// are sized for an 80x32 terminal.
type Geometry struct {
	ScreenWidth  int
	ScreenHeight int

	RingCenter  Point
	RingRadiusX float64
	RingRadiusY float64
	HitRadius   float64 // tile hit zone radius, in rows
	Aspect      float64 // cell height / cell width

	BoardOrigin Point
	CellWidth   int
	CellHeight  int
	CellGapX    int
	CellGapY    int

	BadgeY       float64
	BadgePadX    int
	BadgeSpacing int

	ShuffleButton Point
}

// DefaultGeometry returns the layout used by the terminal frontend.
func DefaultGeometry() Geometry {
	return Geometry{
		ScreenWidth:  80,
		ScreenHeight: 32,

		RingCenter:  Point{X: 40, Y: 24},
		RingRadiusX: 12,
		RingRadiusY: 5,
		HitRadius:   1.5,
		Aspect:      2,

		BoardOrigin: Point{X: 26, Y: 2},
		CellWidth:   5,
		CellHeight:  3,
		CellGapX:    1,
		CellGapY:    0,

		BadgeY:       15,
		BadgePadX:    2,
		BadgeSpacing: 1,

		ShuffleButton: Point{X: 40, Y: 30},
	}
}

// SlotPosition returns the screen position of slot i out of n around the ring.
// Slot 0 sits at angle 0 (to the right of the centre) and slots advance
// clockwise on screen.
func (g Geometry) SlotPosition(i, n int) Point {
	if n <= 0 {
		return g.RingCenter
	}
	angle := float64(i) / float64(n) * math.Pi * 2
	return Point{
		X: g.RingCenter.X + g.RingRadiusX*math.Cos(angle),
		Y: g.RingCenter.Y + g.RingRadiusY*math.Sin(angle),
	}
}

// CellOrigin returns the top-left corner of the board cell at col,row.
func (g Geometry) CellOrigin(col, row int) Point {
	return Point{
		X: g.BoardOrigin.X + float64(col*(g.CellWidth+g.CellGapX)),
		Y: g.BoardOrigin.Y + float64(row*(g.CellHeight+g.CellGapY)),
	}
}

// CellCenter returns the point a letter lands on inside the cell at col,row.
func (g Geometry) CellCenter(col, row int) Point {
	return g.CellOrigin(col, row).Add(Point{
		X: float64(g.CellWidth / 2),
		Y: float64(g.CellHeight / 2),
	})
}

// HitZone returns the tile hit circle centred on p.
func (g Geometry) HitZone(p Point) Circle {
	return Circle{Center: p, Radius: g.HitRadius, Aspect: g.Aspect}
}
