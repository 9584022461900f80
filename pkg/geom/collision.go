// pkg/geom/collision.go
package geom

import "math"

// Overlap reports whether two boxes intersect. Boxes that only share an edge
// do not overlap.
func Overlap(a, b Rect) bool {
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

// CollidesAny reports whether r overlaps any of rs.
func CollidesAny(r Rect, rs []Rect) bool {
	for _, other := range rs {
		if Overlap(r, other) {
			return true
		}
	}
	return false
}

// isNearDiagonal reports whether a segment with the given heading lies within
// 22.5 degrees of a diagonal.
func isNearDiagonal(angle float64) bool {
	return math.Abs(math.Mod(math.Abs(angle), math.Pi/2)-math.Pi/4) < math.Pi/8
}

// LaneCells covers every segment of lane with boxes of the given corridor width.
// Near-diagonal segments are approximated by a run of squares, everything else
// by the segment's bounding box inflated by half the width.
func LaneCells(lane []Point, width float64) []Rect {
	var cells []Rect
	for i := 1; i < len(lane); i++ {
		p1, p2 := lane[i-1], lane[i]
		angle := math.Atan2(p1.Y-p2.Y, p1.X-p2.X)
		if isNearDiagonal(angle) {
			segments := int(Distance(p1, p2)/width+0.5) * 2
			cur := p1
			for j := 0; j < segments; j++ {
				cells = append(cells, RectAt(cur, Size{W: width, H: width}))
				cur = cur.Add((p2.X-p1.X)/float64(segments), (p2.Y-p1.Y)/float64(segments))
			}
			continue
		}
		cells = append(cells, Rect{
			X: math.Min(p1.X, p2.X) - width/2,
			Y: math.Min(p1.Y, p2.Y) - width/2,
			W: math.Abs(p1.X-p2.X) + width,
			H: math.Abs(p1.Y-p2.Y) + width,
		})
	}
	return cells
}

// LaneBlocked reports whether r intrudes into the lane corridor.
func LaneBlocked(r Rect, lane []Point, width float64) bool {
	return CollidesAny(r, LaneCells(lane, width))
}
