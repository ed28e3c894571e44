package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadius is the mean earth radius in meters, used for all great-circle
// distances in this module.
const EarthRadius = 6371000.0

// Point is a geographic location. It wraps an orb.Point, which stores the
// coordinate as (lon, lat).
type Point struct {
	point orb.Point
}

func NewPoint(lat, lon float64) *Point {
	p := MakePoint(lat, lon)
	return &p
}

func MakePoint(lat, lon float64) Point {
	return Point{point: orb.Point{lon, lat}}
}

// FromOrb wraps an orb.Point.
func FromOrb(p orb.Point) Point {
	return Point{point: p}
}

func (p Point) Lat() float64 { return p.point.Lat() }
func (p Point) Lon() float64 { return p.point.Lon() }

// Orb returns the underlying orb.Point (lon, lat order).
func (p Point) Orb() orb.Point { return p.point }

// Phi is the latitude in radians.
func (p Point) Phi() float64 { return deg2rad(p.Lat()) }

// Lambda is the longitude in radians.
func (p Point) Lambda() float64 { return deg2rad(p.Lon()) }

// Haversine computes the great-circle distance to the other point in meters.
func (p Point) Haversine(other Point) float64 {
	deltaPhi := other.Phi() - p.Phi()
	deltaLambda := other.Lambda() - p.Lambda()

	a := math.Pow(math.Sin(deltaPhi/2), 2) +
		math.Cos(p.Phi())*math.Cos(other.Phi())*math.Pow(math.Sin(deltaLambda/2), 2)
	return 2 * EarthRadius * math.Asin(math.Sqrt(a))
}

// DistanceTo is an alias for Haversine.
func (p Point) DistanceTo(other Point) float64 {
	return p.Haversine(other)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat(), p.Lon())
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}
