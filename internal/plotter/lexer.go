package plotter

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// asciiSpace is the separator set: space, tab, line feed, form feed and
// carriage return. Vertical tab and non-ASCII spaces belong to words.
const asciiSpace = " \t\n\f\r"

const wordType lexer.TokenType = 1

// Token is a maximal run of non-whitespace bytes.
type Token struct {
	Value  string
	Offset int
	Line   int
	Column int
}

var words = mustCompileWords()

func mustCompileWords() *lexmachine.Lexer {
	lm := lexmachine.NewLexer()
	lm.Add([]byte("["+asciiSpace+"]+"), skip)
	lm.Add([]byte("[^"+asciiSpace+"]+"), word)
	if err := lm.Compile(); err != nil {
		panic(err)
	}
	return lm
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func word(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return Token{
		Value:  string(m.Bytes),
		Offset: m.TC,
		Line:   m.StartLine,
		Column: m.StartColumn,
	}, nil
}

// Tokenize splits s on runs of ASCII whitespace, dropping empty fragments.
func Tokenize(s string) ([]Token, error) {
	scanner, err := words.Scanner([]byte(s))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok.(Token))
	}
	return toks, nil
}

// wordDefinition feeds Tokenize output to participle. Every token is a Word;
// the grammar tells letters and numbers apart by value.
type wordDefinition struct{}

func (wordDefinition) Symbols() map[string]lexer.TokenType {
	return map[string]lexer.TokenType{
		"EOF":  lexer.EOF,
		"Word": wordType,
	}
}

func (d wordDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(data))
}

func (wordDefinition) LexString(filename string, input string) (lexer.Lexer, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	stream := &tokenStream{
		tokens: make([]lexer.Token, 0, len(toks)),
		eof:    lexer.Position{Filename: filename, Offset: len(input)},
	}
	for _, t := range toks {
		stream.tokens = append(stream.tokens, lexer.Token{
			Type:  wordType,
			Value: t.Value,
			Pos: lexer.Position{
				Filename: filename,
				Offset:   t.Offset,
				Line:     t.Line,
				Column:   t.Column,
			},
		})
	}
	return stream, nil
}

type tokenStream struct {
	tokens []lexer.Token
	eof    lexer.Position
}

func (s *tokenStream) Next() (lexer.Token, error) {
	if len(s.tokens) == 0 {
		return lexer.Token{Type: lexer.EOF, Pos: s.eof}, nil
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, nil
}
