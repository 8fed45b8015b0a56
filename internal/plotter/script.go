package plotter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineError records which line of a script failed to parse.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Policy decides what a batch parse does when it meets an invalid line.
type Policy int

const (
	// StopAtFirst aborts on the first invalid line and returns no commands.
	StopAtFirst Policy = iota
	// CollectAll keeps going and reports every invalid line.
	CollectAll
)

// ParseLines parses every line in order. The result is all or nothing: the
// first invalid line aborts and no partial list is returned.
func ParseLines(lines []string) ([]Command, error) {
	cmds := make([]Command, 0, len(lines))
	for i, text := range lines {
		c, err := Parse(text)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: text, Err: err}
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// ParseAll parses every line and returns the valid commands together with a
// LineError for each invalid one.
func ParseAll(lines []string) ([]Command, []*LineError) {
	var (
		cmds []Command
		bad  []*LineError
	)
	for i, text := range lines {
		c, err := Parse(text)
		if err != nil {
			bad = append(bad, &LineError{Line: i + 1, Text: text, Err: err})
			continue
		}
		cmds = append(cmds, c)
	}
	return cmds, bad
}

// Script is the outcome of reading a whole document.
type Script struct {
	Commands []Command
	Errors   []*LineError
}

// OK reports whether every line was valid.
func (s *Script) OK() bool { return len(s.Errors) == 0 }

// ReadOptions controls ReadScript.
type ReadOptions struct {
	Policy    Policy
	SkipBlank bool
}

// ReadScript parses r one line at a time. Lines may be of any length and a
// trailing "\r" is dropped. Line numbers in errors count every physical line,
// skipped ones included. With StopAtFirst the returned script has no commands
// once an invalid line is seen.
func ReadScript(r io.Reader, opts ReadOptions) (*Script, error) {
	br := bufio.NewReader(r)
	script := &Script{}
	for n := 1; ; n++ {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading script: %w", err)
		}
		if err == io.EOF && text == "" {
			return script, nil
		}
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

		if !(opts.SkipBlank && strings.Trim(text, asciiSpace) == "") {
			c, perr := Parse(text)
			if perr != nil {
				script.Errors = append(script.Errors, &LineError{Line: n, Text: text, Err: perr})
				if opts.Policy == StopAtFirst {
					script.Commands = nil
					return script, nil
				}
			} else {
				script.Commands = append(script.Commands, c)
			}
		}
		if err == io.EOF {
			return script, nil
		}
	}
}
