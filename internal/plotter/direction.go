package plotter

import "errors"

// Direction is one of the four compass headings a Move travels along.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// ErrDirectionParse is returned by ParseDirection for anything but N, S, E or W.
var ErrDirectionParse = errors.New("invalid direction")

// ParseDirection maps a single, already isolated token to a Direction.
// Matching is exact: no trimming and no case folding.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "N":
		return North, nil
	case "S":
		return South, nil
	case "E":
		return East, nil
	case "W":
		return West, nil
	}
	return 0, ErrDirectionParse
}

// Symbol returns the letter used for d in the command language.
func (d Direction) Symbol() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Direction(?)"
}
