package expr

import (
	"fmt"
	"strings"

	"github.com/Aleod-m/typers/pkg/unsigned"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	NUMBER // decimal literal
	BINARY // 0b literal
	IDENT
	TRUE
	FALSE

	LPAREN
	RPAREN
	COMMA

	PLUS
	MINUS
	STAR
	SHL // "<<"
	SHR // ">>"
	EQ
	NEQ
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ
)

var tokenNames = map[TokenType]string{
	EOF: "end of input", ILLEGAL: "illegal",
	NUMBER: "number", BINARY: "binary literal", IDENT: "identifier",
	TRUE: "true", FALSE: "false",
	LPAREN: "(", RPAREN: ")", COMMA: ",",
	PLUS: "+", MINUS: "-", STAR: "*", SHL: "<<", SHR: ">>",
	EQ: "==", NEQ: "!=", LESS: "<", LESS_EQ: "<=", GREATER: ">", GREATER_EQ: ">=",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a lexical token. Offset is the byte offset of its first character.
type Token struct {
	Type   TokenType
	Lexeme string
	Offset int
}

// SyntaxError reports a lexing or parsing failure.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return unsigned.ErrSyntax }

// Lexer splits an expression into tokens.
type Lexer struct {
	src   string
	start int
	cur   int
}

// NewLexer returns a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokens scans the whole input. The last token is always EOF.
func (l *Lexer) Tokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) match(c byte) bool {
	if l.peek() != c {
		return false
	}
	l.cur++
	return true
}

func (l *Lexer) token(tt TokenType) Token {
	return Token{Type: tt, Lexeme: l.src[l.start:l.cur], Offset: l.start}
}

func (l *Lexer) err(msg string) error {
	return &SyntaxError{Offset: l.start, Msg: msg}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	for !l.isAtEnd() && strings.IndexByte(" \t\r\n", l.peek()) >= 0 {
		l.cur++
	}
	l.start = l.cur
	if l.isAtEnd() {
		return l.token(EOF), nil
	}

	c := l.src[l.cur]
	l.cur++
	switch c {
	case '(':
		return l.token(LPAREN), nil
	case ')':
		return l.token(RPAREN), nil
	case ',':
		return l.token(COMMA), nil
	case '+':
		return l.token(PLUS), nil
	case '-':
		return l.token(MINUS), nil
	case '*':
		return l.token(STAR), nil
	case '=':
		if l.match('=') {
			return l.token(EQ), nil
		}
		return Token{}, l.err("unexpected '=' (did you mean '==')")
	case '!':
		if l.match('=') {
			return l.token(NEQ), nil
		}
		return Token{}, l.err("unexpected '!'")
	case '<':
		if l.match('<') {
			return l.token(SHL), nil
		}
		if l.match('=') {
			return l.token(LESS_EQ), nil
		}
		return l.token(LESS), nil
	case '>':
		if l.match('>') {
			return l.token(SHR), nil
		}
		if l.match('=') {
			return l.token(GREATER_EQ), nil
		}
		return l.token(GREATER), nil
	}

	switch {
	case isDigit(c):
		return l.scanNumber(c)
	case isIdentStart(c):
		for !l.isAtEnd() && (isIdentStart(l.peek()) || isDigit(l.peek())) {
			l.cur++
		}
		switch l.src[l.start:l.cur] {
		case "true":
			return l.token(TRUE), nil
		case "false":
			return l.token(FALSE), nil
		}
		return l.token(IDENT), nil
	}
	return Token{}, l.err(fmt.Sprintf("unexpected character %q", c))
}

func (l *Lexer) scanNumber(first byte) (Token, error) {
	if first == '0' && l.peek() == 'b' {
		l.cur++
		n := 0
		for !l.isAtEnd() && (l.peek() == '0' || l.peek() == '1' || l.peek() == '_') {
			if l.peek() != '_' {
				n++
			}
			l.cur++
		}
		if n == 0 {
			return Token{}, l.err("binary literal has no digits")
		}
		if isDigit(l.peek()) || isIdentStart(l.peek()) {
			return Token{}, l.err(fmt.Sprintf("invalid digit %q in binary literal", l.peek()))
		}
		return l.token(BINARY), nil
	}

	for !l.isAtEnd() && (isDigit(l.peek()) || l.peek() == '_') {
		l.cur++
	}
	if isIdentStart(l.peek()) {
		return Token{}, l.err(fmt.Sprintf("invalid character %q in number", l.peek()))
	}
	return l.token(NUMBER), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
