package viewer

import (
	"math"

	"github.com/alfille/foxhole-solve/internal/topology"
)

// Point is a hole's center in an arbitrary unit square, (0,0) top-left
// to (1,1) bottom-right. cmd/foxhole-view scales this into screen
// pixels.
type Point struct {
	X, Y float64
}

// Layout places every hole of a r.Length x r.Width board of the given
// geometry. Connection does not affect placement, only which jumps are
// legal, so it is not a parameter here.
func Layout(geo topology.Geometry, xlength, ylength int) []Point {
	switch geo {
	case topology.Grid:
		return gridLayout(xlength, ylength)
	case topology.Triangle:
		return triangleLayout(xlength)
	default:
		return circleLayout(xlength, ylength)
	}
}

// circleLayout places holes on ylength concentric rings of xlength
// holes each, matching topology.buildCircle's (x, y) indexing.
func circleLayout(xlength, ylength int) []Point {
	points := make([]Point, 0, xlength*ylength)
	for y := 0; y < ylength; y++ {
		radius := 0.15 + 0.35*float64(y+1)/float64(ylength)
		if ylength == 1 {
			radius = 0.4
		}
		for x := 0; x < xlength; x++ {
			theta := 2 * math.Pi * float64(x) / float64(xlength)
			points = append(points, Point{
				X: 0.5 + radius*math.Cos(theta),
				Y: 0.5 + radius*math.Sin(theta),
			})
		}
	}
	return points
}

// gridLayout places holes on a regular xlength x ylength lattice,
// matching topology.buildGrid's (x, y) indexing.
func gridLayout(xlength, ylength int) []Point {
	points := make([]Point, 0, xlength*ylength)
	for y := 0; y < ylength; y++ {
		for x := 0; x < xlength; x++ {
			points = append(points, cellCenter(x, y, xlength, ylength))
		}
	}
	return points
}

// triangleLayout places holes on a triangular lattice with xlength
// rows, row y holding y+1 slots, matching topology.tri's indexing.
func triangleLayout(xlength int) []Point {
	points := make([]Point, 0, xlength*(xlength+1)/2)
	for y := 0; y < xlength; y++ {
		rowWidth := float64(y + 1)
		for x := 0; x <= y; x++ {
			centerOffset := (float64(xlength-1) - rowWidth + 1) / 2
			points = append(points, Point{
				X: (centerOffset + float64(x) + 0.5) / float64(xlength),
				Y: (float64(y) + 0.5) / float64(xlength),
			})
		}
	}
	return points
}

func cellCenter(x, y, xlength, ylength int) Point {
	return Point{
		X: (float64(x) + 0.5) / float64(xlength),
		Y: (float64(y) + 0.5) / float64(ylength),
	}
}
