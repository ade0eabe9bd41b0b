// Package geometry holds the zodiacal arithmetic shared by every calculator.
package geometry

import "math"

// DegNorm wraps x into [0, 360).
func DegNorm(x float64) float64 {
	r := math.Mod(x, 360)
	if r < 0 {
		r += 360
	}
	// math.Mod of a tiny negative value can round up to exactly 360.
	if r >= 360 {
		r = 0
	}
	return r
}

// SignIndex returns the zodiac sign index in [0, 11].
func SignIndex(lon float64) int {
	idx := int(math.Floor(DegNorm(lon) / 30))
	if idx > 11 {
		idx = 11
	}
	return idx
}

// DegInSign returns the degree within the sign in [0, 30).
func DegInSign(lon float64) float64 {
	d := DegNorm(lon) - float64(SignIndex(lon))*30
	if d < 0 {
		return 0
	}
	return d
}

// InArc reports whether x lies in the forward arc [start, end), wrapping at 360.
func InArc(x, start, end float64) bool {
	x, start, end = DegNorm(x), DegNorm(start), DegNorm(end)
	if start <= end {
		return start <= x && x < end
	}
	return x >= start || x < end
}

// HouseOf returns the 1-based house whose arc [cusp[i], cusp[i+1]) contains lon.
// It falls back to house 12 when no arc matches.
func HouseOf(lon float64, cusps [12]float64) int {
	for i := 0; i < 12; i++ {
		if InArc(lon, cusps[i], cusps[(i+1)%12]) {
			return i + 1
		}
	}
	return 12
}

// Distance returns the shorter angular separation between a and b, in [0, 180].
func Distance(a, b float64) float64 {
	d := DegNorm(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Forward returns the arc measured forward along the zodiac from start to end, in [0, 360).
func Forward(start, end float64) float64 {
	return DegNorm(end - start)
}

// Sin, Cos and Tan take degrees.
func Sin(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

func Cos(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

func Tan(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }

// Atan2 returns degrees in [0, 360).
func Atan2(y, x float64) float64 {
	return DegNorm(math.Atan2(y, x) * 180 / math.Pi)
}

// Asin returns degrees.
func Asin(x float64) float64 {
	return math.Asin(x) * 180 / math.Pi
}

// Atan returns degrees.
func Atan(x float64) float64 {
	return math.Atan(x) * 180 / math.Pi
}
