// Package battle computes Pokemon TCG battle points from match statistics.
package battle

import (
	"errors"
	"math"
)

// Default weighting applied when the caller does not override it.
const (
	DefaultMulti = 3
	DefaultDivi  = 3
)

// ErrInvalidDivisor is returned when the points divisor is zero.
var ErrInvalidDivisor = errors.New("invalid divisor: divi must be nonzero")

// Input holds the values a battle-points calculation is made from.
type Input struct {
	Twins   int `json:"twins" yaml:"twins"`
	TPoints int `json:"tpoints" yaml:"tpoints"`
	MDamage int `json:"mdamage" yaml:"mdamage"`
	Multi   int `json:"multi" yaml:"multi"`
	Divi    int `json:"divi" yaml:"divi"`
}

// NewInput returns an Input with the default multiplier and divisor.
func NewInput(twins, tpoints, mdamage int) Input {
	return Input{
		Twins:   twins,
		TPoints: tpoints,
		MDamage: mdamage,
		Multi:   DefaultMulti,
		Divi:    DefaultDivi,
	}
}

// Breakdown is a computed score together with the terms it was summed from.
type Breakdown struct {
	Input  Input `json:"input" yaml:"input"`
	Part1  int   `json:"part1" yaml:"part1"`
	Part2  int   `json:"part2" yaml:"part2"`
	Points int   `json:"points" yaml:"points"`
}

// Calculate evaluates the battle-points formula:
//
//	part1  = twins*multi - tpoints
//	part2  = ceil(tpoints/divi) - twins
//	points = part1 + part2 + mdamage
func Calculate(in Input) (Breakdown, error) {
	if in.Divi == 0 {
		return Breakdown{}, ErrInvalidDivisor
	}
	part1 := in.Twins*in.Multi - in.TPoints
	part2 := CeilDiv(in.TPoints, in.Divi) - in.Twins
	return Breakdown{
		Input:  in,
		Part1:  part1,
		Part2:  part2,
		Points: part1 + part2 + in.MDamage,
	}, nil
}

// Compute returns only the score for the given values.
func Compute(twins, tpoints, mdamage, multi, divi int) (int, error) {
	b, err := Calculate(Input{
		Twins:   twins,
		TPoints: tpoints,
		MDamage: mdamage,
		Multi:   multi,
		Divi:    divi,
	})
	if err != nil {
		return 0, err
	}
	return b.Points, nil
}

// CeilDiv returns a/b rounded toward positive infinity. b must be nonzero.
func CeilDiv(a, b int) int {
	q := a / b
	// Go truncates toward zero, so a positive non-integral quotient is one short.
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// FloatCeilDiv rounds a/b up through a float64 round trip. It matches
// CeilDiv while both operands fit in the 53-bit mantissa.
func FloatCeilDiv(a, b int) int {
	return int(math.Ceil(float64(a) / float64(b)))
}
