package lexer

import (
	"fmt"
	"strings"

	. "nlsql/internal/common"
)

const (
	UnterminatedString = "UnterminatedString"
)

// Error is the only failure the lexer produces. Everything else, including
// arbitrary unknown words, tokenizes as IDENT and is left for the parser to
// reject with a contextual message.
type Error struct {
	Kind string
	Pos  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("unterminated string starting at position %d", e.Pos)
}

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the whole input and returns the token stream, terminated
// by an EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() (Token, error) {
	var tok Token

	l.skipWhitespace()

	if l.ch == 0 {
		return Token{Type: EOF, Literal: "", Pos: l.position}, nil
	}

	pos := l.position

	switch l.ch {
	case ',':
		tok = l.newToken(COMMA)
	case '(':
		tok = l.newToken(LPAREN)
	case ')':
		tok = l.newToken(RPAREN)
	case '*':
		tok = l.newToken(WILDCARD)
	case '=':
		tok = l.newToken(EQ)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: LESS_THAN_OR_EQ, Literal: "<=", Pos: pos}
		} else {
			tok = l.newToken(LESS_THAN)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: GREATER_THAN_OR_EQ, Literal: ">=", Pos: pos}
		} else {
			tok = l.newToken(GREATER_THAN)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NOT_EQ, Literal: "!=", Pos: pos}
		} else {
			tok = l.newToken(IDENT)
		}
	case '\'', '"':
		return l.readString()
	case '-':
		if isDigit(l.peekChar()) {
			return l.readNumberToken(), nil
		}
		tok = l.newToken(IDENT)
	default:
		if isDigit(l.ch) {
			return l.readNumberToken(), nil
		}
		if isLetter(l.ch) {
			if phraseTok, ok := l.matchPhrase(); ok {
				return phraseTok, nil
			}
			word := l.readWord()
			tokType := LookupWord(word)
			literal := word
			if tokType != IDENT {
				literal = strings.ToLower(word)
			}
			return Token{Type: tokType, Literal: literal, Pos: pos}, nil
		}
		tok = l.newToken(IDENT)
	}

	l.readChar()
	return tok, nil
}

// matchPhrase tries every multi-word surface form at the current position,
// longest first, so "order by" never lexes as two identifiers.
func (l *Lexer) matchPhrase() (Token, bool) {
	rest := strings.ToLower(l.input[l.position:])

	for _, phrase := range Phrases() {
		if !strings.HasPrefix(rest, phrase.Text) {
			continue
		}
		end := len(phrase.Text)
		if end < len(rest) && isWordChar(rest[end]) {
			continue
		}

		tok := Token{Type: phrase.Type, Literal: phrase.Text, Pos: l.position}
		for i := 0; i < end; i++ {
			l.readChar()
		}
		return tok, true
	}

	return Token{}, false
}

func (l *Lexer) readWord() string {
	position := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readString() (Token, error) {
	quote := l.ch
	start := l.position
	position := l.position + 1

	for {
		l.readChar()
		if l.ch == quote {
			break
		}
		if l.ch == 0 {
			return Token{}, &Error{Kind: UnterminatedString, Pos: start}
		}
	}

	value := l.input[position:l.position]
	l.readChar()

	return Token{Type: STRING, Literal: value, Pos: start}, nil
}

func (l *Lexer) readNumberToken() Token {
	start := l.position

	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return Token{Type: NUMBER, Literal: l.input[start:l.position], Pos: start}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) newToken(tokenType TokenType) Token {
	return Token{Type: tokenType, Literal: string(l.ch), Pos: l.position}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
