package plotter

import (
	"math"
	"sync"
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		input    string
		expected Command
	}{
		{"U", PenUp{}},
		{"D", PenDown{}},
		{"P 4", PenSelect{Index: 4}},
		{"P 0", PenSelect{Index: 0}},
		{"N 7", Move{Direction: North, Distance: 7}},
		{"W -7", Move{Direction: West, Distance: -7}},
		{"S 1", Move{Direction: South, Distance: 1}},
		{"E 2", Move{Direction: East, Distance: 2}},
		{"E -0", Move{Direction: East, Distance: 0}},
		{"N 007", Move{Direction: North, Distance: 7}},
		{"P 010", PenSelect{Index: 10}},
		{"  P\t4  ", PenSelect{Index: 4}},
		{"\r\nD\f", PenDown{}},
		{"S \t\t -12", Move{Direction: South, Distance: -12}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.expected)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"E",
		"E u",
		"X 3",
		"U 1",
		"D D",
		"U D",
		"P",
		"P -1",
		"P +1",
		"P 4x",
		"P 1_000",
		"N +3",
		"N 3 4",
		"N 3.5",
		"N 0x10",
		"N -",
		"N 99999999999999999999",
		"P 99999999999999999999999",
		"u",
		"d",
		"n 3",
		"NE 3",
		"N\v3",
		"N\u00a05",
		"3 N",
	}

	for _, input := range tests {
		got, err := Parse(input)
		if err != ErrCommandParse {
			t.Errorf("Parse(%q) = %#v, %v; want ErrCommandParse", input, got, err)
		}
		if got != nil {
			t.Errorf("Parse(%q) returned command %#v alongside an error", input, got)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []Command{
		PenUp{},
		PenDown{},
		PenSelect{Index: 0},
		PenSelect{Index: 3},
		PenSelect{Index: math.MaxUint},
		Move{Direction: North, Distance: 0},
		Move{Direction: South, Distance: 42},
		Move{Direction: East, Distance: math.MaxInt},
		Move{Direction: West, Distance: math.MinInt},
	}

	for _, c := range tests {
		got, err := Parse(c.String())
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.String(), err)
			continue
		}
		if got != c {
			t.Errorf("Parse(%q) = %#v, want %#v", c.String(), got, c)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{"P 3", "E u", "W -9", "X"}
	for _, input := range inputs {
		first, firstErr := Parse(input)
		for i := 0; i < 3; i++ {
			got, err := Parse(input)
			if got != first || err != firstErr {
				t.Fatalf("Parse(%q) changed between calls: %v/%v then %v/%v", input, first, firstErr, got, err)
			}
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := Move{Direction: West, Distance: -i}
			for j := 0; j < 50; j++ {
				got, err := Parse(want.String())
				if err != nil || got != want {
					t.Errorf("Parse(%q) = %v, %v", want.String(), got, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		command  Command
		expected string
	}{
		{PenUp{}, "U"},
		{PenDown{}, "D"},
		{PenSelect{Index: 4}, "P 4"},
		{Move{Direction: West, Distance: -7}, "W -7"},
		{Move{Direction: North, Distance: 8}, "N 8"},
	}

	for _, tt := range tests {
		if got := tt.command.String(); got != tt.expected {
			t.Errorf("%#v.String() = %q, want %q", tt.command, got, tt.expected)
		}
	}
}
