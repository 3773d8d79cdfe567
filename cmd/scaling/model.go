// Package scaling converts model test statistics to full scale with Froude's
// law of similitude.
//
// A quantity scales with the length ratio raised to a channel specific
// exponent: 1 for lengths, 0 for angles and accelerations, 3 for forces and
// 4 for moments.
package scaling

import (
	"math"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

// Channel holds the statistics of one model scale measurement channel.
type Channel struct {
	Number int
	Name   string
	Unit   string
	Max    float64
	Min    float64
	Std    float64
	Mean   float64
	// Factor is the Froude exponent applied to the length ratio.
	Factor float64
}

// ScaledChannel is a Channel converted to full scale.
type ScaledChannel struct {
	Channel
	Scale float64
}

// FroudeMultiplier returns value * scale^factor.
func FroudeMultiplier(value, scale, factor float64) float64 {
	return value * math.Pow(scale, factor)
}

// DefaultChannels returns the five channels of the reference model test:
// heave, pitch, vertical acceleration, bilge box bending moment and the
// tension in mooring line 3.
func DefaultChannels() []Channel {
	return []Channel{
		{Number: 1, Name: "Heave", Unit: "m", Max: 0.1, Min: -0.098, Std: 0.02913, Mean: -0.00000011, Factor: 1},
		{Number: 2, Name: "Pitch", Unit: "deg", Max: 10.832, Min: -7.259, Std: 2.031, Mean: 0.149, Factor: 0},
		{Number: 3, Name: "Vertical acceleration", Unit: "m/s^2", Max: 1.932, Min: -2.028, Std: 0.62124, Mean: -0.0011, Factor: 0},
		{Number: 4, Name: "Bilge box bending moment", Unit: "kNm", Max: 0.000864635, Min: -0.00060473969, Std: 0.00013577, Mean: 0.00004477, Factor: 4},
		{Number: 5, Name: "Tension, line 3", Unit: "kN", Max: 0.0234897, Min: 0.00259679, Std: 0.00224897959, Mean: 0.008546, Factor: 3},
	}
}

// Scale converts channels to the full scale unit whose waterline diameter is
// fullScaleDiameter (m). The model has unit diameter, so the diameter is the
// length ratio.
func Scale(channels []Channel, fullScaleDiameter float64) ([]ScaledChannel, error) {
	if math.IsNaN(fullScaleDiameter) || math.IsInf(fullScaleDiameter, 0) || fullScaleDiameter <= 0 {
		return nil, calcerr.Invalid("full scale diameter must be positive, got %g", fullScaleDiameter)
	}
	out := make([]ScaledChannel, len(channels))
	for i, c := range channels {
		s := fullScaleDiameter
		out[i] = ScaledChannel{
			Channel: Channel{
				Number: c.Number,
				Name:   c.Name,
				Unit:   c.Unit,
				Max:    FroudeMultiplier(c.Max, s, c.Factor),
				Min:    FroudeMultiplier(c.Min, s, c.Factor),
				Std:    FroudeMultiplier(c.Std, s, c.Factor),
				Mean:   FroudeMultiplier(c.Mean, s, c.Factor),
				Factor: c.Factor,
			},
			Scale: s,
		}
	}
	return out, nil
}
