// Package report renders parsed scripts for the penplot tool.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"penplot/internal/config"
	"penplot/internal/plotter"
)

// Record is the encoded form of one command.
type Record struct {
	Op        string `json:"op" yaml:"op"`
	Pen       *uint  `json:"pen,omitempty" yaml:"pen,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Distance  *int   `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Failure is the encoded form of an invalid line.
type Failure struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Document is what the JSON and YAML formats emit.
type Document struct {
	Commands []Record  `json:"commands" yaml:"commands"`
	Errors   []Failure `json:"errors,omitempty" yaml:"errors,omitempty"`
}

const (
	OpPenDown   = "pen_down"
	OpPenUp     = "pen_up"
	OpPenSelect = "pen_select"
	OpMove      = "move"
)

// NewRecord encodes a single command.
func NewRecord(c plotter.Command) Record {
	switch c := c.(type) {
	case plotter.PenDown:
		return Record{Op: OpPenDown}
	case plotter.PenUp:
		return Record{Op: OpPenUp}
	case plotter.PenSelect:
		n := c.Index
		return Record{Op: OpPenSelect, Pen: &n}
	case plotter.Move:
		d := c.Distance
		return Record{Op: OpMove, Direction: c.Direction.String(), Distance: &d}
	}
	return Record{}
}

// NewDocument encodes a whole script.
func NewDocument(s *plotter.Script) Document {
	doc := Document{Commands: make([]Record, 0, len(s.Commands))}
	for _, c := range s.Commands {
		doc.Commands = append(doc.Commands, NewRecord(c))
	}
	for _, e := range s.Errors {
		doc.Errors = append(doc.Errors, Failure{Line: e.Line, Text: e.Text})
	}
	return doc
}

// Write prints s in the given format. The text format lists the commands in
// their canonical line form and leaves failures to the caller.
func Write(w io.Writer, format string, s *plotter.Script) error {
	switch format {
	case config.FormatText:
		for _, c := range s.Commands {
			if _, err := fmt.Fprintln(w, c.String()); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(s))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(s)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
