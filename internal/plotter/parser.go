package plotter

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Line is the whole grammar: exactly one of the alternatives matches a valid
// line and the tokens must be consumed completely.
type Line struct {
	Up     bool       `parser:"  @'U'"`
	Down   bool       `parser:"| @'D'"`
	Select *SelectPen `parser:"| @@"`
	Move   *Step      `parser:"| @@"`
}

type SelectPen struct {
	Index string `parser:"'P' @Word"`
}

type Step struct {
	Direction string `parser:"@('N' | 'S' | 'E' | 'W')"`
	Distance  string `parser:"@Word"`
}

var parser = participle.MustBuild[Line](participle.Lexer(wordDefinition{}))

// Parse decodes one line of text. Any failure, whatever its cause, is
// reported as ErrCommandParse.
func Parse(s string) (Command, error) {
	l, err := parser.ParseString("", s)
	if err != nil {
		return nil, ErrCommandParse
	}
	return l.Command()
}

// Command converts the matched fields into a typed Command.
func (l *Line) Command() (Command, error) {
	switch {
	case l.Up:
		return PenUp{}, nil
	case l.Down:
		return PenDown{}, nil
	case l.Select != nil:
		n, err := parseIndex(l.Select.Index)
		if err != nil {
			return nil, ErrCommandParse
		}
		return PenSelect{Index: n}, nil
	case l.Move != nil:
		d, err := ParseDirection(l.Move.Direction)
		if err != nil {
			return nil, ErrCommandParse
		}
		v, err := parseDistance(l.Move.Distance)
		if err != nil {
			return nil, ErrCommandParse
		}
		return Move{Direction: d, Distance: v}, nil
	}
	return nil, ErrCommandParse
}

func parseIndex(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// strconv accepts a leading '+', the command language does not.
func parseDistance(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
