// internal/defs/tmx.go
package defs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

var ErrNoLane = errors.New("map has no polyline lane")

// Only the parts of a Tiled map that describe object polylines are decoded.
type tmxMap struct {
	ObjectGroups []tmxObjectGroup `xml:"objectgroup"`
}

type tmxObjectGroup struct {
	Name    string      `xml:"name,attr"`
	Objects []tmxObject `xml:"object"`
}

type tmxObject struct {
	X        float64      `xml:"x,attr"`
	Y        float64      `xml:"y,attr"`
	Polyline *tmxPolyline `xml:"polyline"`
}

type tmxPolyline struct {
	Points string `xml:"points,attr"`
}

// LoadLane returns the first polyline of a Tiled .tmx map in screen space.
func LoadLane(path string) ([]geom.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	return ParseLane(data)
}

// ParseLane extracts the first polyline from raw .tmx data. Polyline points
// are relative to their object's origin.
func ParseLane(data []byte) ([]geom.Point, error) {
	var m tmxMap
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map: %w", err)
	}
	for _, group := range m.ObjectGroups {
		for _, obj := range group.Objects {
			if obj.Polyline == nil {
				continue
			}
			return parsePoints(obj.Polyline.Points, geom.Point{X: obj.X, Y: obj.Y})
		}
	}
	return nil, ErrNoLane
}

func parsePoints(s string, origin geom.Point) ([]geom.Point, error) {
	var points []geom.Point
	for _, pair := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("malformed polyline point %q", pair)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed polyline point %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed polyline point %q: %w", pair, err)
		}
		points = append(points, origin.Add(x, y))
	}
	return points, nil
}
