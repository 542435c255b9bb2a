package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Aleod-m/typers/pkg/unsigned"
)

// Node is an expression tree node.
type Node interface {
	Offset() int
	String() string
}

// Lit is a numeric literal.
type Lit struct {
	Pos   int
	Value unsigned.Unsigned
	Text  string
}

// BoolLit is true or false.
type BoolLit struct {
	Pos   int
	Value bool
}

// Ident is a variable reference.
type Ident struct {
	Pos  int
	Name string
}

// Binary is an infix arithmetic or comparison.
type Binary struct {
	Pos  int
	Op   TokenType
	L, R Node
}

// Shift shifts X by a literal number of positions.
type Shift struct {
	Pos   int
	Op    TokenType
	X     Node
	Count int
}

// Call is a builtin function application.
type Call struct {
	Pos  int
	Name string
	Args []Node
}

func (n *Lit) Offset() int     { return n.Pos }
func (n *BoolLit) Offset() int { return n.Pos }
func (n *Ident) Offset() int   { return n.Pos }
func (n *Binary) Offset() int  { return n.Pos }
func (n *Shift) Offset() int   { return n.Pos }
func (n *Call) Offset() int    { return n.Pos }

func (n *Lit) String() string     { return n.Text }
func (n *BoolLit) String() string { return strconv.FormatBool(n.Value) }
func (n *Ident) String() string   { return n.Name }
func (n *Binary) String() string  { return fmt.Sprintf("(%s %s %s)", n.L, n.Op, n.R) }
func (n *Shift) String() string   { return fmt.Sprintf("(%s %s %d)", n.X, n.Op, n.Count) }

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
}

// maxShift bounds the literal count of << and >>.
const maxShift = 4096

type parser struct {
	toks []Token
	pos  int
}

// Parse parses a single expression.
//
//	expr     := shift [ ("==" | "!=" | "<" | "<=" | ">" | ">=") shift ]
//	shift    := additive { ("<<" | ">>") NUMBER }
//	additive := term { ("+" | "-") term }
//	term     := primary { "*" primary }
//	primary  := NUMBER | BINARY | true | false | IDENT [ "(" args ")" ] | "(" expr ")"
func Parse(src string) (Node, error) {
	toks, err := NewLexer(src).Tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, p.errAt(tok, fmt.Sprintf("unexpected %s after expression", tok.Type))
	}
	return n, nil
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) accept(types ...TokenType) (Token, bool) {
	tok := p.peek()
	for _, t := range types {
		if tok.Type == t {
			return p.next(), true
		}
	}
	return tok, false
}

func (p *parser) expect(tt TokenType) (Token, error) {
	if tok, ok := p.accept(tt); ok {
		return tok, nil
	}
	tok := p.peek()
	return tok, p.errAt(tok, fmt.Sprintf("expected %s, found %s", tt, tok.Type))
}

func (p *parser) errAt(tok Token, msg string) error {
	return &SyntaxError{Offset: tok.Offset, Msg: msg}
}

func (p *parser) expr() (Node, error) {
	l, err := p.shift()
	if err != nil {
		return nil, err
	}
	op, ok := p.accept(EQ, NEQ, LESS, LESS_EQ, GREATER, GREATER_EQ)
	if !ok {
		return l, nil
	}
	r, err := p.shift()
	if err != nil {
		return nil, err
	}
	return &Binary{Pos: op.Offset, Op: op.Type, L: l, R: r}, nil
}

func (p *parser) shift() (Node, error) {
	x, err := p.additive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(SHL, SHR)
		if !ok {
			return x, nil
		}
		count, err := p.expect(NUMBER)
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(strings.ReplaceAll(count.Lexeme, "_", ""))
		if convErr != nil || n > maxShift {
			return nil, p.errAt(count, fmt.Sprintf("shift count must be at most %d", maxShift))
		}
		x = &Shift{Pos: op.Offset, Op: op.Type, X: x, Count: n}
	}
}

func (p *parser) additive() (Node, error) {
	l, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(PLUS, MINUS)
		if !ok {
			return l, nil
		}
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		l = &Binary{Pos: op.Offset, Op: op.Type, L: l, R: r}
	}
}

func (p *parser) term() (Node, error) {
	l, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(STAR)
		if !ok {
			return l, nil
		}
		r, err := p.primary()
		if err != nil {
			return nil, err
		}
		l = &Binary{Pos: op.Offset, Op: op.Type, L: l, R: r}
	}
}

func (p *parser) primary() (Node, error) {
	tok := p.next()
	switch tok.Type {
	case NUMBER:
		v, err := unsigned.Parse(tok.Lexeme)
		if err != nil {
			return nil, p.errAt(tok, err.Error())
		}
		return &Lit{Pos: tok.Offset, Value: v, Text: tok.Lexeme}, nil
	case BINARY:
		v, err := unsigned.ParseRaw(tok.Lexeme)
		if err != nil {
			return nil, p.errAt(tok, err.Error())
		}
		return &Lit{Pos: tok.Offset, Value: v, Text: tok.Lexeme}, nil
	case TRUE, FALSE:
		return &BoolLit{Pos: tok.Offset, Value: tok.Type == TRUE}, nil
	case LPAREN:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return n, nil
	case IDENT:
		if _, ok := p.accept(LPAREN); !ok {
			return &Ident{Pos: tok.Offset, Name: tok.Lexeme}, nil
		}
		call := &Call{Pos: tok.Offset, Name: tok.Lexeme}
		if _, ok := p.accept(RPAREN); ok {
			return call, nil
		}
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if _, ok := p.accept(COMMA); !ok {
				break
			}
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return call, nil
	case EOF:
		return nil, p.errAt(tok, "unexpected end of input")
	}
	return nil, p.errAt(tok, fmt.Sprintf("unexpected %s", tok.Type))
}
