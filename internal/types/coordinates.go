package types

import (
	"fmt"
	"math"
	"math/big"
)

// CoordinatePrecision is the number of decimal places kept when a raw device
// position is normalized for the weather API.
const CoordinatePrecision = 4

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// NormalizeCoords rounds a raw position to CoordinatePrecision decimal places.
// The exact binary value is rounded, halves away from zero, so -74.00595
// (stored as -74.005949999...) becomes -74.0059.
func NormalizeCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  roundTo(latitude, CoordinatePrecision),
		Longitude: roundTo(longitude, CoordinatePrecision),
	}
}

// Normalize returns c rounded to CoordinatePrecision decimal places.
func (c Coords) Normalize() Coords {
	return NormalizeCoords(c.Latitude, c.Longitude)
}

// Valid reports whether c lies within the WGS84 latitude/longitude ranges.
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String formats c the way the points endpoint expects it: "lat,lon".
func (c Coords) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// roundTo works on the exact rational value of the float; scaling in float64
// first can push a value just below a half over it.
func roundTo(value float64, places int) float64 {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	r := new(big.Rat).SetFloat64(math.Abs(value))
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	out, _ := new(big.Rat).SetFrac(n, scale).Float64()
	return math.Copysign(out, value)
}
