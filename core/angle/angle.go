// Package angle provides arithmetic on the 360-degree zodiac circle.
// All longitudes are sidereal degrees in [0, 360).
package angle

import "math"

// Norm normalizes a longitude into [0, 360)
func Norm(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// Arc returns the zodiacal arc from one longitude to another, measured
// forward through the zodiac, in [0, 360)
func Arc(from, to float64) float64 {
	return Norm(to - from)
}

// Closest returns the shortest angular separation between two longitudes,
// in [0, 180]
func Closest(a, b float64) float64 {
	d := Arc(a, b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HouseDistance returns the whole-sign house distance from one longitude
// to another, counted self-inclusively (same sign = 1, next sign = 2, ...).
// A longitude exactly on a sign boundary belongs to the later sign.
func HouseDistance(from, to float64) int {
	return int(Arc(from, to)/30) + 1
}

// Division returns the zero-based index of the division of given width (in
// degrees) containing a degree offset. A value exactly on a boundary belongs
// to the later division.
func Division(degree, width float64) int {
	return int(degree / width)
}
