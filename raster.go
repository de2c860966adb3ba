package fontkit

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterizeOutline renders a recorded outline into the canvas. The
// outline coordinates are in font units with Y pointing up; transform
// maps them into canvas pixel space (typically a scale by
// pointSize/unitsPerEm composed with a translation). The Y axis is
// flipped during rendering so that canvas rows grow downward.
func RasterizeOutline(canvas *Canvas, outline *Outline, transform Matrix, opts RasterizationOptions) error {
	if err := canvas.Validate(); err != nil {
		return err
	}
	if canvas.Width == 0 || canvas.Height == 0 || outline.IsEmpty() {
		return nil
	}

	r := vector.NewRasterizer(canvas.Width, canvas.Height)
	r.DrawOp = draw.Src

	at := func(v Vector) (float32, float32) {
		p := transform.TransformPoint(v)
		return float32(p.X), float32(canvas.Height) - float32(p.Y)
	}

	started := false
	for _, seg := range outline.Segments() {
		switch seg.Op {
		case OutlineOpMoveTo:
			if started {
				r.ClosePath()
			}
			x, y := at(seg.Points[0])
			r.MoveTo(x, y)
			started = true
		case OutlineOpLineTo:
			x, y := at(seg.Points[0])
			r.LineTo(x, y)
		case OutlineOpQuadTo:
			cx, cy := at(seg.Points[0])
			x, y := at(seg.Points[1])
			r.QuadTo(cx, cy, x, y)
		case OutlineOpCubeTo:
			c1x, c1y := at(seg.Points[0])
			c2x, c2y := at(seg.Points[1])
			x, y := at(seg.Points[2])
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case OutlineOpClose:
			r.ClosePath()
			started = false
		}
	}
	if started {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, canvas.Width, canvas.Height))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	canvas.blitMask(mask, opts)
	return nil
}

// RasterBoundsOf computes the integer pixel rectangle covered by an
// outline under the given transform, after the Y flip implied by a
// raster target of the given height. It is the device-space analogue
// of Outline.Bounds.
func RasterBoundsOf(outline *Outline, transform Matrix) image.Rectangle {
	b := outline.Bounds()
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	corners := [4]Vector{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MinX, b.MaxY},
		{b.MaxX, b.MaxY},
	}
	var dev Rect
	for i, c := range corners {
		p := transform.TransformPoint(c)
		// Flip Y: device rows grow downward.
		p.Y = -p.Y
		dev = dev.extend(p, i == 0)
	}
	return image.Rect(
		int(math.Floor(dev.MinX)), int(math.Floor(dev.MinY)),
		int(math.Ceil(dev.MaxX)), int(math.Ceil(dev.MaxY)),
	)
}
