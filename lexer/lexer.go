/*
File   : monkey/lexer/lexer.go
Package: lexer
*/

// Package lexer turns Monkey source text into a stream of token.Token
// values. It scans with a single byte of lookahead past the cursor, in the
// same hand-rolled, switch-dispatched style as the teacher's lexer
// (go-mix's lexer/lexer.go) and the rest of the retrieved pack's
// interpreters — no scanning library is idiomatic here.
package lexer

import "github.com/gophermonkey/monkey/token"

// Lexer holds the scanning state over one source string. Position points at
// ch, the byte currently under examination; readPosition points one past
// it, giving the lookahead NextToken needs to recognize two-character
// operators like == and !=.
type Lexer struct {
	input        string
	position     int  // index of ch in input
	readPosition int  // index of the next byte to read
	ch           byte // byte at position, or 0 at end of input
}

// New creates a Lexer positioned at the first byte of input (or at EOF
// immediately, for an empty source string).
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances the cursor by one byte, setting ch to 0 once the input
// is exhausted. NextToken relies on that sentinel to recognize EOF.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks one byte past the cursor without consuming it. This is the
// lexer's only lookahead and is what lets == and != be recognized without
// backtracking.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token.Token in the stream, or an EOF token
// (returned indefinitely) once the source is exhausted.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "=="}
		} else {
			tok = token.New(token.ASSIGN, l.ch)
		}
	case '+':
		tok = token.New(token.PLUS, l.ch)
	case '-':
		tok = token.New(token.MINUS, l.ch)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!="}
		} else {
			tok = token.New(token.BANG, l.ch)
		}
	case '/':
		tok = token.New(token.SLASH, l.ch)
	case '*':
		tok = token.New(token.ASTERISK, l.ch)
	case '<':
		tok = token.New(token.LT, l.ch)
	case '>':
		tok = token.New(token.GT, l.ch)
	case ';':
		tok = token.New(token.SEMICOLON, l.ch)
	case ',':
		tok = token.New(token.COMMA, l.ch)
	case '(':
		tok = token.New(token.LPAREN, l.ch)
	case ')':
		tok = token.New(token.RPAREN, l.ch)
	case '{':
		tok = token.New(token.LBRACE, l.ch)
	case '}':
		tok = token.New(token.RBRACE, l.ch)
	case '"':
		tok.Type = token.STRING
		tok.Literal = l.readString()
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok // readIdentifier already left ch on the byte after the name
		} else if isDigit(l.ch) {
			tok.Type = token.INT
			tok.Literal = l.readNumber()
			return tok // readNumber already left ch on the byte after the digits
		}
		tok = token.New(token.ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

// skipWhitespace consumes ASCII spaces, tabs, newlines, and carriage
// returns between tokens. Monkey has no comment syntax, so this is the
// entirety of what sits between meaningful tokens.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes a run of letters/digits/underscores starting at
// an already-confirmed leading letter or underscore, and returns the
// substring read.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes a run of ASCII digits and returns the substring read.
// The AST builder, not the lexer, parses this text into an int64.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString consumes the content of a string literal, starting with the
// cursor on the opening quote. It stops at the closing quote or at end of
// input, whichever comes first — an unterminated string simply reads to
// EOF, per §4.1's recognition rules; there are no escape sequences.
func (l *Lexer) readString() string {
	start := l.position + 1
	for {
		l.readChar()
		if l.ch == '"' || l.ch == 0 {
			break
		}
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
