package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/nsalesky/mal/parser/token"
)

// runes which terminate a symbol, keyword, or integer
const delimRunes = "()[]{}'\"`,;"

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NextToken scans and returns the next token from the input.  After an EOF,
// ERROR, INCOMPLETE, or INVALID token is returned all subsequent calls return
// a token of the same kind.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readChar()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case '[':
		return lex.charToken(token.BRACKET_L)
	case ']':
		return lex.charToken(token.BRACKET_R)
	case '{':
		return lex.charToken(token.BRACE_L)
	case '}':
		return lex.charToken(token.BRACE_R)
	case '\'':
		return lex.charToken(token.QUOTE)
	case '`':
		return lex.charToken(token.QUASIQUOTE)
	case '~':
		if lex.peekRune() == '@' {
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
			return lex.charToken(token.SPLICE_UNQUOTE)
		}
		return lex.charToken(token.UNQUOTE)
	case ';':
		for lex.peekRune() != '\n' {
			err := lex.readChar()
			if err == io.EOF {
				lex.readErr = nil
				return lex.scanner.EmitToken(token.COMMENT)
			}
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '"':
		return lex.readString()
	case ':':
		if !isWord(lex.peekRune()) {
			return lex.errorf("keyword has no name")
		}
		err := lex.readSymbol()
		if err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.KEYWORD)
	case '-':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		err := lex.readSymbol()
		if err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.SYMBOL)
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}

		if isWordStart(lex.ch) {
			err := lex.readSymbol()
			if err != nil {
				return lex.emitError(err, false)
			}
			return lex.scanner.EmitToken(token.SYMBOL)
		}

		lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
		return lex.emit(token.INVALID, lex.readErr.Error())
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

// emitError emits a token for err.  When err is io.EOF the token is EOF if
// expectEOF is true and INCOMPLETE otherwise.
func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.INCOMPLETE, "unexpected EOF")
	}
	lex.readErr = err
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	tok := lex.scanner.EmitToken(typ)
	return tok
}

// readString scans a string literal.  Escape sequences are validated by the
// parser.
func (lex *Lexer) readString() *token.Token {
	for {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
		switch lex.ch {
		case '"':
			return lex.scanner.EmitToken(token.STRING)
		case '\\':
			err := lex.readChar()
			if err != nil {
				return lex.emitError(err, false)
			}
		}
	}
}

func (lex *Lexer) readSymbol() error {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	if c := lex.peekRune(); isWord(c) {
		return lex.errorf("integer contains a non-numeric character: %q", c)
	}
	// the returned string may not actually be a usable number (overflow), but
	// we can find that out at parse time -- not scan time.
	return lex.scanner.EmitToken(token.INT)
}

func (lex *Lexer) skipWhitespace() error {
	for isSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, ok := lex.scanner.Peek()
	if !ok {
		return 0
	}
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c) || c == ','
}

func isWordStart(c rune) bool {
	return isWord(c) && c != '~' && c != ':'
}

func isWord(c rune) bool {
	return c != 0 && !isSpace(c) && !strings.ContainsRune(delimRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
