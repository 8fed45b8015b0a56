package plotter

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"N", North},
		{"S", South},
		{"E", East},
		{"W", West},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.expected)
		}
		if got.Symbol() != tt.input {
			t.Errorf("%v.Symbol() = %q, want %q", got, got.Symbol(), tt.input)
		}
	}
}

func TestParseDirectionRejects(t *testing.T) {
	for _, input := range []string{"", "n", " N", "N ", "NN", "North", "U", "P"} {
		if _, err := ParseDirection(input); err != ErrDirectionParse {
			t.Errorf("ParseDirection(%q) error = %v, want ErrDirectionParse", input, err)
		}
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{North: "North", South: "South", East: "East", West: "West"}
	for d, name := range names {
		if d.String() != name {
			t.Errorf("String() = %q, want %q", d.String(), name)
		}
	}
}
