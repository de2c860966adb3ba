package fontkit

// Vector represents a 2D point or displacement.
//
// Glyph-space values (advances, origins, outline coordinates) use the
// font-unit convention with the Y axis increasing upward; pixel-space
// values use the image convention with Y increasing downward.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Rect represents an axis-aligned rectangle for glyph bounds.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Union returns the smallest rectangle containing both r and s.
// If either rectangle is empty, the other is returned.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	if s.MinX < r.MinX {
		r.MinX = s.MinX
	}
	if s.MinY < r.MinY {
		r.MinY = s.MinY
	}
	if s.MaxX > r.MaxX {
		r.MaxX = s.MaxX
	}
	if s.MaxY > r.MaxY {
		r.MaxY = s.MaxY
	}
	return r
}

// extend grows the rectangle to contain the point, treating the
// zero rectangle at the first call as empty.
func (r Rect) extend(v Vector, first bool) Rect {
	if first {
		return Rect{MinX: v.X, MinY: v.Y, MaxX: v.X, MaxY: v.Y}
	}
	if v.X < r.MinX {
		r.MinX = v.X
	}
	if v.Y < r.MinY {
		r.MinY = v.Y
	}
	if v.X > r.MaxX {
		r.MaxX = v.X
	}
	if v.Y > r.MaxY {
		r.MaxY = v.Y
	}
	return r
}
