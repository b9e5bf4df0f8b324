package rdparser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nsalesky/mal/lisp"
	"github.com/nsalesky/mal/parser/token"
)

// ErrIncomplete is wrapped by any Error caused by input ending inside an
// unterminated form or string.  An interactive shell can read another line
// and try again.
var ErrIncomplete = errors.New("unexpected end of input")

// Error is a syntax error located in source text.
type Error struct {
	Source *token.Location
	Msg    string
	Err    error
}

func (err *Error) Error() string {
	if err.Source == nil {
		return err.Msg
	}
	return fmt.Sprintf("%s: %s", err.Source, err.Msg)
}

// Unwrap returns the cause of err, if any.
func (err *Error) Unwrap() error {
	return err.Err
}

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]lisp.Expr, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	src *TokenSource
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return &Parser{
		src: NewTokenSource(scanner),
	}
}

// ParseProgram parses all remaining top-level expressions in the input.
func (p *Parser) ParseProgram() ([]lisp.Expr, error) {
	var exprs []lisp.Expr
	for !p.src.IsEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (lisp.Expr, error) {
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.STRING:
		return p.ParseLiteralString()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.KEYWORD:
		return p.ParseKeyword()
	case token.QUOTE:
		return p.ParseQuote(lisp.EQuote)
	case token.QUASIQUOTE:
		return p.ParseQuote(lisp.EQuasiquote)
	case token.UNQUOTE:
		return p.ParseQuote(lisp.EUnquote)
	case token.SPLICE_UNQUOTE:
		return p.ParseQuote(lisp.ESpliceUnquote)
	case token.PAREN_L:
		return p.ParseSeq(token.PAREN_L, lisp.ListExpr)
	case token.BRACKET_L:
		return p.ParseSeq(token.BRACKET_L, lisp.VectorExpr)
	case token.BRACE_L:
		return p.ParseHashMap()
	case token.EOF, token.INCOMPLETE:
		p.ReadToken()
		return lisp.Expr{}, p.incomplete("expected an expression")
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return lisp.Expr{}, p.errorf("%s", p.Token().Text)
	default:
		p.ReadToken()
		return lisp.Expr{}, p.errorf("unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseLiteralInt() (lisp.Expr, error) {
	if !p.expect(token.INT) {
		return lisp.Expr{}, p.errorf("invalid integer literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lisp.Expr{}, p.errorf("integer literal overflows int64: %v", text)
	}
	return lisp.IntExpr(x), nil
}

func (p *Parser) ParseLiteralString() (lisp.Expr, error) {
	if !p.expect(token.STRING) {
		return lisp.Expr{}, p.errorf("invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	s, err := unescape(text[1 : len(text)-1])
	if err != nil {
		return lisp.Expr{}, p.errorf("invalid string literal %s: %v", text, err)
	}
	return lisp.StringExpr(s), nil
}

func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '"', '\\':
			buf.WriteByte(s[i])
		case 'n':
			buf.WriteByte('\n')
		case 't':
			buf.WriteByte('\t')
		default:
			return "", fmt.Errorf("invalid escape sequence \\%c", s[i])
		}
	}
	return buf.String(), nil
}

func (p *Parser) ParseSymbol() (lisp.Expr, error) {
	if !p.expect(token.SYMBOL) {
		return lisp.Expr{}, p.errorf("invalid symbol: %v", p.PeekType())
	}
	switch text := p.Token().Text; text {
	case "nil":
		return lisp.NilExpr(), nil
	case "true":
		return lisp.BoolExpr(true), nil
	case "false":
		return lisp.BoolExpr(false), nil
	default:
		return lisp.SymbolExpr(text), nil
	}
}

func (p *Parser) ParseKeyword() (lisp.Expr, error) {
	if !p.expect(token.KEYWORD) {
		return lisp.Expr{}, p.errorf("invalid keyword: %v", p.PeekType())
	}
	return lisp.KeywordExpr(strings.TrimPrefix(p.Token().Text, ":")), nil
}

func (p *Parser) ParseQuote(typ lisp.ExprType) (lisp.Expr, error) {
	p.ReadToken()
	x, err := p.ParseExpression()
	if err != nil {
		return lisp.Expr{}, err
	}
	return lisp.QuoteExpr(typ, x), nil
}

// ParseSeq parses a delimited sequence opened by a token of type open and
// builds the result with fn.
func (p *Parser) ParseSeq(open token.Type, fn func(...lisp.Expr) lisp.Expr) (lisp.Expr, error) {
	cells, err := p.parseDelimited(open)
	if err != nil {
		return lisp.Expr{}, err
	}
	return fn(cells...), nil
}

func (p *Parser) ParseHashMap() (lisp.Expr, error) {
	cells, err := p.parseDelimited(token.BRACE_L)
	if err != nil {
		return lisp.Expr{}, err
	}
	if len(cells)%2 != 0 {
		return lisp.Expr{}, p.errorf("hash-map is missing a value for key %v", cells[len(cells)-1])
	}
	pairs := make([]lisp.ExprPair, len(cells)/2)
	for i := range pairs {
		pairs[i] = lisp.ExprPair{Key: cells[2*i], Value: cells[2*i+1]}
	}
	return lisp.HashMapExpr(pairs...), nil
}

func (p *Parser) parseDelimited(open token.Type) ([]lisp.Expr, error) {
	if !p.expect(open) {
		return nil, p.errorf("expected %s: %v", open, p.PeekType())
	}
	opener := p.Token()
	closer := open.Closer()
	var cells []lisp.Expr
	for {
		switch p.PeekType() {
		case closer:
			p.ReadToken()
			return cells, nil
		case token.EOF, token.INCOMPLETE:
			p.ReadToken()
			return nil, p.incomplete(fmt.Sprintf("unmatched %s at %s", opener.Type, opener.Source))
		case token.PAREN_R, token.BRACKET_R, token.BRACE_R:
			p.ReadToken()
			return nil, p.errorf("unbalanced delimiters: %s closed by %s", opener.Type, p.Token().Type)
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
}

func (p *Parser) ReadToken() *token.Token {
	p.src.Scan()
	return p.src.Token
}

func (p *Parser) Token() *token.Token {
	return p.src.Token
}

func (p *Parser) PeekType() token.Type {
	return p.src.Peek.Type
}

func (p *Parser) expect(typ token.Type) bool {
	return p.src.AcceptType(typ)
}

func (p *Parser) errorf(format string, v ...interface{}) error {
	return &Error{
		Source: p.Token().Source,
		Msg:    fmt.Sprintf(format, v...),
	}
}

func (p *Parser) incomplete(msg string) error {
	return &Error{
		Source: p.Token().Source,
		Msg:    msg,
		Err:    ErrIncomplete,
	}
}
