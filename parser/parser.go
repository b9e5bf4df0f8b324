/*
Package parser provides a lisp parser.

	expr    := list | vector | map | quoted | atom
	list    := '(' expr* ')'
	vector  := '[' expr* ']'
	map     := '{' (expr expr)* '}'
	quoted  := ( '\'' | '`' | '~' | '~@' ) expr
	atom    := int | string | keyword | symbol
	int     := /-?[0-9]+/
	string  := '"' ( /[^"\\]/ | '\' /["\\nt]/ )* '"'
	keyword := ':' symbol

Commas are whitespace and ';' begins a comment extending to the end of the
line.  The symbols nil, true, and false are read as literals.
*/
package parser

import (
	"github.com/nsalesky/mal/lisp"
	"github.com/nsalesky/mal/parser/rdparser"
)

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}
