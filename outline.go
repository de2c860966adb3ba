package fontkit

// OutlineSink receives the vector path commands describing a glyph's
// shape. Coordinates are in font design units with the Y axis
// increasing upward.
//
// Every contour begins with MoveTo and ends with Close. Sinks must not
// retain the argument values beyond the call.
type OutlineSink interface {
	// MoveTo starts a new contour at the given point.
	MoveTo(to Vector)
	// LineTo draws a line to the given point.
	LineTo(to Vector)
	// QuadTo draws a quadratic Bézier curve through ctrl to the target.
	QuadTo(ctrl, to Vector)
	// CubeTo draws a cubic Bézier curve through both control points to
	// the target.
	CubeTo(ctrl1, ctrl2 Vector, to Vector)
	// Close closes the current contour.
	Close()
}

// OutlineOp is the type of a recorded path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota
	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo
	// OutlineOpQuadTo draws a quadratic Bézier curve.
	OutlineOpQuadTo
	// OutlineOpCubeTo draws a cubic Bézier curve.
	OutlineOpCubeTo
	// OutlineOpClose closes the current contour.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubeTo:
		return "CubeTo"
	case OutlineOpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// OutlineSegment is one recorded path segment.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment:
	//   - MoveTo, LineTo: Points[0] is the target
	//   - QuadTo: Points[0] is the control, Points[1] the target
	//   - CubeTo: Points[0], Points[1] are controls, Points[2] the target
	//   - Close: no points
	Points [3]Vector
}

// Outline records the path commands streamed into it, segment by
// segment. It implements OutlineSink and is the bridge between a Face's
// Outline method and consumers that need random access to the path,
// such as the rasterizer.
//
// The zero value is an empty outline ready for use.
type Outline struct {
	segments []OutlineSegment
}

// MoveTo implements OutlineSink.
func (o *Outline) MoveTo(to Vector) {
	o.segments = append(o.segments, OutlineSegment{Op: OutlineOpMoveTo, Points: [3]Vector{to}})
}

// LineTo implements OutlineSink.
func (o *Outline) LineTo(to Vector) {
	o.segments = append(o.segments, OutlineSegment{Op: OutlineOpLineTo, Points: [3]Vector{to}})
}

// QuadTo implements OutlineSink.
func (o *Outline) QuadTo(ctrl, to Vector) {
	o.segments = append(o.segments, OutlineSegment{Op: OutlineOpQuadTo, Points: [3]Vector{ctrl, to}})
}

// CubeTo implements OutlineSink.
func (o *Outline) CubeTo(ctrl1, ctrl2 Vector, to Vector) {
	o.segments = append(o.segments, OutlineSegment{Op: OutlineOpCubeTo, Points: [3]Vector{ctrl1, ctrl2, to}})
}

// Close implements OutlineSink.
func (o *Outline) Close() {
	o.segments = append(o.segments, OutlineSegment{Op: OutlineOpClose})
}

// Reset empties the outline, retaining the backing storage for reuse.
func (o *Outline) Reset() {
	o.segments = o.segments[:0]
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return len(o.segments) == 0
}

// Segments returns the recorded segments. The returned slice is the
// backing store; callers must not modify it.
func (o *Outline) Segments() []OutlineSegment {
	return o.segments
}

// Replay streams the recorded commands into another sink.
func (o *Outline) Replay(sink OutlineSink) {
	for _, seg := range o.segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			sink.MoveTo(seg.Points[0])
		case OutlineOpLineTo:
			sink.LineTo(seg.Points[0])
		case OutlineOpQuadTo:
			sink.QuadTo(seg.Points[0], seg.Points[1])
		case OutlineOpCubeTo:
			sink.CubeTo(seg.Points[0], seg.Points[1], seg.Points[2])
		case OutlineOpClose:
			sink.Close()
		}
	}
}

// Transform returns a copy of the outline with every point transformed
// by the matrix.
func (o *Outline) Transform(m Matrix) *Outline {
	out := &Outline{segments: make([]OutlineSegment, len(o.segments))}
	for i, seg := range o.segments {
		t := seg
		for j := range t.Points {
			t.Points[j] = m.TransformPoint(seg.Points[j])
		}
		out.segments[i] = t
	}
	return out
}

// Bounds returns the bounding box of all points in the outline.
// Control points are included, so the box is conservative for curves.
func (o *Outline) Bounds() Rect {
	var bounds Rect
	first := true
	for _, seg := range o.segments {
		n := 0
		switch seg.Op {
		case OutlineOpMoveTo, OutlineOpLineTo:
			n = 1
		case OutlineOpQuadTo:
			n = 2
		case OutlineOpCubeTo:
			n = 3
		}
		for j := 0; j < n; j++ {
			bounds = bounds.extend(seg.Points[j], first)
			first = false
		}
	}
	return bounds
}
