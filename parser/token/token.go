package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants produced by the lexer.
const (
	INVALID Type = iota
	ERROR
	EOF

	// INCOMPLETE is emitted when input ends in the middle of a token, such as
	// an unterminated string literal.
	INCOMPLETE

	// Atomic expressions & literals
	SYMBOL
	KEYWORD
	INT
	STRING

	COMMENT

	// Reader macros
	QUOTE
	QUASIQUOTE
	UNQUOTE
	SPLICE_UNQUOTE

	// Delimiters
	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:        "invalid",
		ERROR:          "error",
		EOF:            "EOF",
		INCOMPLETE:     "incomplete",
		SYMBOL:         "symbol",
		KEYWORD:        "keyword",
		INT:            "int",
		STRING:         "string",
		COMMENT:        ";",
		QUOTE:          "'",
		QUASIQUOTE:     "`",
		UNQUOTE:        "~",
		SPLICE_UNQUOTE: "~@",
		PAREN_L:        "(",
		PAREN_R:        ")",
		BRACKET_L:      "[",
		BRACKET_R:      "]",
		BRACE_L:        "{",
		BRACE_R:        "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Closer returns the delimiter that closes a form opened by typ.
func (typ Type) Closer() Type {
	switch typ {
	case PAREN_L:
		return PAREN_R
	case BRACKET_L:
		return BRACKET_R
	case BRACE_L:
		return BRACE_R
	default:
		return INVALID
	}
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	file := loc.File
	if file == "" {
		file = "<input>"
	}
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", file, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", file, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", file, loc.Line, loc.Col)
	}
}
