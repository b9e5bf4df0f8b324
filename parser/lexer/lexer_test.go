package lexer

import (
	"strings"
	"testing"

	"github.com/nsalesky/mal/parser/token"
	"github.com/stretchr/testify/assert"
)

func lexTypes(source string) ([]token.Type, []string) {
	lex := New(token.NewScanner("test", strings.NewReader(source)))
	var types []token.Type
	var texts []string
	for i := 0; i < 100; i++ {
		tok := lex.NextToken()
		types = append(types, tok.Type)
		texts = append(texts, tok.Text)
		switch tok.Type {
		case token.EOF, token.ERROR, token.INVALID, token.INCOMPLETE:
			return types, texts
		}
	}
	return types, texts
}

func TestLexer(t *testing.T) {
	tests := []struct {
		source string
		types  []token.Type
		texts  []string
	}{
		{"", []token.Type{token.EOF}, []string{""}},
		{" ,\t\n", []token.Type{token.EOF}, []string{""}},
		{"()[]{}",
			[]token.Type{token.PAREN_L, token.PAREN_R, token.BRACKET_L, token.BRACKET_R, token.BRACE_L, token.BRACE_R, token.EOF},
			[]string{"(", ")", "[", "]", "{", "}", ""}},
		{"'`~~@",
			[]token.Type{token.QUOTE, token.QUASIQUOTE, token.UNQUOTE, token.SPLICE_UNQUOTE, token.EOF},
			[]string{"'", "`", "~", "~@", ""}},
		{"12 -3 - -x",
			[]token.Type{token.INT, token.INT, token.SYMBOL, token.SYMBOL, token.EOF},
			[]string{"12", "-3", "-", "-x", ""}},
		{`"a\"b" :kw`,
			[]token.Type{token.STRING, token.KEYWORD, token.EOF},
			[]string{`"a\"b"`, ":kw", ""}},
		{"a ; comment\nb",
			[]token.Type{token.SYMBOL, token.COMMENT, token.SYMBOL, token.EOF},
			[]string{"a", "; comment", "b", ""}},
		{"; trailing",
			[]token.Type{token.COMMENT, token.EOF},
			[]string{"; trailing", ""}},
		{"(f\"s\")",
			[]token.Type{token.PAREN_L, token.SYMBOL, token.STRING, token.PAREN_R, token.EOF},
			[]string{"(", "f", `"s"`, ")", ""}},
		{`"open`,
			[]token.Type{token.INCOMPLETE},
			[]string{"unexpected EOF"}},
	}
	for i, test := range tests {
		types, texts := lexTypes(test.source)
		assert.Equal(t, test.types, types, "test %d: %q", i, test.source)
		assert.Equal(t, test.texts, texts, "test %d: %q", i, test.source)
	}
}

func TestLexerErrors(t *testing.T) {
	for _, source := range []string{"12x", ":", ":)"} {
		types, _ := lexTypes(source)
		if assert.NotEmpty(t, types) {
			assert.Equal(t, token.ERROR, types[len(types)-1], "%q", source)
		}
	}
}
