package plotter

import (
	"errors"
	"strconv"
)

// ErrCommandParse is the only error Parse returns. It deliberately carries no
// detail about which part of the line was wrong.
var ErrCommandParse = errors.New("invalid command")

// Command is one decoded instruction. The set of implementations is closed:
// PenDown, PenUp, PenSelect and Move.
type Command interface {
	String() string
	command()
}

// PenDown lowers the current pen.
type PenDown struct{}

// PenUp raises the current pen.
type PenUp struct{}

// PenSelect makes pen Index the current pen.
type PenSelect struct {
	Index uint
}

// Move travels Distance units along Direction. A negative distance goes the
// opposite way.
type Move struct {
	Direction Direction
	Distance  int
}

func (PenDown) command()   {}
func (PenUp) command()     {}
func (PenSelect) command() {}
func (Move) command()      {}

func (PenDown) String() string { return "D" }

func (PenUp) String() string { return "U" }

func (p PenSelect) String() string {
	return "P " + strconv.FormatUint(uint64(p.Index), 10)
}

func (m Move) String() string {
	return m.Direction.Symbol() + " " + strconv.Itoa(m.Distance)
}
