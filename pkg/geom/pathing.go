// pkg/geom/pathing.go
package geom

import "math"

// StepToward moves from cur towards dst by at most maxDist and never past dst.
// When both axes change, the step is split by the slope ratio so that the
// resulting vector is exactly maxDist long.
func StepToward(cur, dst Point, maxDist float64) Point {
	if cur == dst || maxDist <= 0 {
		return cur
	}
	if Distance(cur, dst) <= maxDist {
		return dst
	}

	staticX := dst.X == cur.X
	staticY := dst.Y == cur.Y
	switch {
	case staticY:
		return Point{X: moveOnAxis(cur.X, dst.X, maxDist), Y: cur.Y}
	case staticX:
		return Point{X: cur.X, Y: moveOnAxis(cur.Y, dst.Y, maxDist)}
	}

	ratio := math.Abs((dst.X - cur.X) / (dst.Y - cur.Y))
	xMove := math.Sqrt(maxDist * maxDist / (1 + 1/(ratio*ratio)))
	return Point{
		X: moveOnAxis(cur.X, dst.X, xMove),
		Y: moveOnAxis(cur.Y, dst.Y, xMove/ratio),
	}
}

// moveOnAxis moves a single coordinate, snapping to dst when within reach.
func moveOnAxis(cur, dst, dist float64) float64 {
	if math.Abs(dst-cur) <= dist {
		return dst
	}
	if dst > cur {
		return cur + dist
	}
	return cur - dist
}

// FacingAngle returns the heading from cur to dst in radians. It is 0 when
// the two points coincide.
func FacingAngle(cur, dst Point) float64 {
	if cur == dst {
		return 0
	}
	return math.Atan2(dst.Y-cur.Y, dst.X-cur.X)
}
