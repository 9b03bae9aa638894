// Package lexer turns source text into the token.Token stream described in
// pkg/token, synthesizing Indent/Dedent/Newline/Eof the way a Python-like
// block-structured grammar needs. The indentation state machine here is
// ported line-for-line from the reference Mython lexer (see
// original_source/mython/lexer.cpp): two spaces make one indent level, and
// a dedent that needs to drop more than one level at once is resolved one
// token at a time by pushing two placeholder spaces back onto the input so
// the next call re-enters indentation parsing.
package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"mython/interpreter-go/pkg/token"
)

// LexError reports ill-formed lexical input.
type LexError struct {
	Msg string
}

func (e *LexError) Error() string { return e.Msg }

// Lexer produces one token.Token at a time from a byte stream.
type Lexer struct {
	src      []byte
	pos      int
	pushback []byte // LIFO: bytes to read before continuing from src[pos]

	currentIndent int
	atLineStart   bool

	current token.Token
}

// New constructs a Lexer over r and primes the first token.
func New(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(data)
}

// NewFromString is a convenience constructor for source held in memory.
func NewFromString(src string) (*Lexer, error) {
	return NewFromBytes([]byte(src))
}

// NewFromBytes constructs a Lexer over src and primes the first token.
func NewFromBytes(src []byte) (*Lexer, error) {
	l := &Lexer{src: src, atLineStart: true}
	tok, err := l.produce()
	if err != nil {
		return nil, err
	}
	l.current = tok
	return l, nil
}

// Current returns the most recently produced token without consuming.
func (l *Lexer) Current() token.Token { return l.current }

// Next advances the lexer and returns the new current token. Once Eof has
// been produced, further calls keep returning Eof.
func (l *Lexer) Next() (token.Token, error) {
	tok, err := l.produce()
	if err != nil {
		return token.Token{}, err
	}
	l.current = tok
	return tok, nil
}

// Expect fails unless the current token has kind k.
func (l *Lexer) Expect(k token.Kind) error {
	if l.current.Kind != k {
		return &LexError{Msg: fmt.Sprintf("expected %s, got %s", k, l.current.Kind)}
	}
	return nil
}

// ExpectToken fails unless the current token equals t (kind and payload).
func (l *Lexer) ExpectToken(t token.Token) error {
	if !l.current.Equal(t) {
		return &LexError{Msg: fmt.Sprintf("expected %s, got %s", t, l.current)}
	}
	return nil
}

// ExpectNext advances and fails unless the new current token has kind k.
func (l *Lexer) ExpectNext(k token.Kind) error {
	if _, err := l.Next(); err != nil {
		return err
	}
	return l.Expect(k)
}

// ExpectNextToken advances and fails unless the new current token equals t.
func (l *Lexer) ExpectNextToken(t token.Token) error {
	if _, err := l.Next(); err != nil {
		return err
	}
	return l.ExpectToken(t)
}

func (l *Lexer) readByte() (byte, bool) {
	if n := len(l.pushback); n > 0 {
		b := l.pushback[n-1]
		l.pushback = l.pushback[:n-1]
		return b, true
	}
	if l.pos >= len(l.src) {
		return 0, false
	}
	b := l.src[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) unread(b byte) {
	l.pushback = append(l.pushback, b)
}

// produce implements ParseToken from the reference lexer.
func (l *Lexer) produce() (token.Token, error) {
	for {
		b, ok := l.readByte()
		if !ok {
			return l.atEOF(), nil
		}

		if b == '\n' {
			if l.atLineStart {
				continue
			}
			l.atLineStart = true
			return token.Nullary(token.Newline), nil
		}

		if b == ' ' {
			if !l.atLineStart {
				continue
			}
			l.atLineStart = false
			l.unread(b)
			tok, isNone, err := l.parseIndent()
			if err != nil {
				return token.Token{}, err
			}
			if isNone {
				continue
			}
			return tok, nil
		}

		if l.atLineStart && l.currentIndent > 0 && b != '#' {
			l.unread(b)
			l.currentIndent--
			return token.Nullary(token.Dedent), nil
		}

		if b == '#' {
			for {
				nb, ok := l.readByte()
				if !ok || nb == '\n' {
					break
				}
			}
			if l.atLineStart {
				continue
			}
			l.atLineStart = true
			return token.Nullary(token.Newline), nil
		}

		l.atLineStart = false
		switch {
		case isAlpha(b) || b == '_':
			l.unread(b)
			return l.lexIdent(), nil
		case isDigit(b):
			l.unread(b)
			return l.lexNumber(), nil
		case b == '"' || b == '\'':
			l.unread(b)
			return l.lexString()
		default:
			l.unread(b)
			return l.lexPunct()
		}
	}
}

// atEOF mirrors the tail of ParseToken once the byte stream is exhausted.
func (l *Lexer) atEOF() token.Token {
	if l.currentIndent > 0 {
		l.currentIndent--
		return token.Nullary(token.Dedent)
	}
	if !l.atLineStart {
		l.atLineStart = true
		return token.Nullary(token.Newline)
	}
	return token.Nullary(token.Eof)
}

// parseIndent mirrors ParseIndent: count leading spaces, compare against
// currentIndent, and emit at most one Indent/Dedent per call. isNone
// reports "no token produced, keep lexing this call" (ParseIndent's
// token_type::None()). A line holding only spaces, or only spaces and a
// comment, is treated as blank: it changes no indentation and leaves the
// lexer at line start.
func (l *Lexer) parseIndent() (tok token.Token, isNone bool, err error) {
	spaces := 0
	for {
		b, ok := l.readByte()
		if !ok || b == '\n' {
			l.atLineStart = true
			return token.Token{}, true, nil
		}
		if b == ' ' {
			spaces++
			continue
		}
		if b == '#' {
			l.unread(b)
			l.atLineStart = true
			return token.Token{}, true, nil
		}
		l.unread(b)
		break
	}

	if spaces%2 != 0 {
		return token.Token{}, false, &LexError{Msg: "Invalid number of spaces"}
	}
	target := spaces / 2

	if target > l.currentIndent {
		l.currentIndent++
		return token.Nullary(token.Indent), false, nil
	}
	if target < l.currentIndent {
		if target < l.currentIndent-1 {
			l.atLineStart = true
			l.unread(' ')
			l.unread(' ')
		}
		l.currentIndent--
		return token.Nullary(token.Dedent), false, nil
	}
	return token.Token{}, true, nil
}

func (l *Lexer) lexIdent() token.Token {
	var sb strings.Builder
	for {
		b, ok := l.readByte()
		if !ok {
			break
		}
		if isAlpha(b) || isDigit(b) || b == '_' {
			sb.WriteByte(b)
			continue
		}
		l.unread(b)
		break
	}
	name := sb.String()
	if kind, ok := token.Keywords[name]; ok {
		return token.Nullary(kind)
	}
	return token.Ident(name)
}

func (l *Lexer) lexNumber() token.Token {
	var sb strings.Builder
	for {
		b, ok := l.readByte()
		if !ok {
			break
		}
		if isDigit(b) {
			sb.WriteByte(b)
			continue
		}
		l.unread(b)
		break
	}
	n, _ := strconv.ParseInt(sb.String(), 10, 64)
	return token.Num(n)
}

func (l *Lexer) lexString() (token.Token, error) {
	open, _ := l.readByte()
	var sb strings.Builder
	for {
		b, ok := l.readByte()
		if !ok {
			return token.Token{}, &LexError{Msg: "Unterminated string"}
		}
		if b == '\\' {
			esc, ok := l.readByte()
			if !ok {
				return token.Token{}, &LexError{Msg: "Unterminated string"}
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(esc)
			}
			continue
		}
		if b == '"' || b == '\'' {
			if b == open {
				break
			}
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte(b)
	}
	return token.Str(sb.String()), nil
}

func (l *Lexer) lexPunct() (token.Token, error) {
	c, _ := l.readByte()
	if c == '<' || c == '>' || c == '!' || c == '=' {
		if nb, ok := l.readByte(); ok {
			if nb == '=' {
				switch c {
				case '<':
					return token.Nullary(token.LessOrEq), nil
				case '>':
					return token.Nullary(token.GreaterOrEq), nil
				case '!':
					return token.Nullary(token.NotEq), nil
				case '=':
					return token.Nullary(token.Eq), nil
				}
			}
			l.unread(nb)
		}
	}
	if isSingleCharPunct(c) {
		return token.Ch(c), nil
	}
	return token.Token{}, &LexError{Msg: "Invalid char"}
}

func isSingleCharPunct(c byte) bool {
	switch c {
	case '=', '.', ',', '(', ')', '+', '-', '*', '/', '<', '>', ':':
		return true
	}
	return false
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
