// internal/component/movement.go
package component

import "github.com/gttkeith/gtt-sdef/pkg/geom"

// Body — position and facing shared by every simulated entity.
type Body struct {
	Position geom.Point
	Rotation float64 // radians
}

// Path — remaining waypoints, the front one is the current target.
type Path struct {
	Points []geom.Point
}

// Clone returns an independent copy of the remaining waypoints.
func (p Path) Clone() Path {
	return Path{Points: append([]geom.Point(nil), p.Points...)}
}

// Done reports whether there is nothing left to walk.
func (p Path) Done() bool { return len(p.Points) == 0 }

// Target returns the current waypoint, or fallback when the path is exhausted.
func (p Path) Target(fallback geom.Point) geom.Point {
	if p.Done() {
		return fallback
	}
	return p.Points[0]
}

// Pop drops the current waypoint.
func (p *Path) Pop() {
	if !p.Done() {
		p.Points = p.Points[1:]
	}
}
