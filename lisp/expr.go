package lisp

import (
	"bytes"
	"strconv"
)

// ExprType is the type of an Expr
type ExprType uint

// Possible ExprType values
const (
	EInvalid ExprType = iota
	EInt
	EString
	ESymbol
	EKeyword
	ENil
	EBool
	EList
	EVector
	EHashMap
	EQuote
	EQuasiquote
	EUnquote
	ESpliceUnquote
)

var exprTypeStrings = []string{
	EInvalid:       "INVALID",
	EInt:           "int",
	EString:        "string",
	ESymbol:        "symbol",
	EKeyword:       "keyword",
	ENil:           "nil",
	EBool:          "bool",
	EList:          "list",
	EVector:        "vector",
	EHashMap:       "hash-map",
	EQuote:         "quote",
	EQuasiquote:    "quasiquote",
	EUnquote:       "unquote",
	ESpliceUnquote: "splice-unquote",
}

func (t ExprType) String() string {
	if int(t) >= len(exprTypeStrings) {
		return exprTypeStrings[EInvalid]
	}
	return exprTypeStrings[t]
}

// Expr is a node of parsed syntax.  Exprs are produced by a Reader and are
// never modified after construction.
type Expr struct {
	Type ExprType
	Int  int64
	Str  string // EString contents, ESymbol name, EKeyword name (without ':')
	Bool bool

	// Cells holds the elements of an EList or EVector, and the single quoted
	// expression of the quote forms.
	Cells []Expr
	Pairs []ExprPair
}

// ExprPair is one key/value entry of a hash-map literal.
type ExprPair struct {
	Key   Expr
	Value Expr
}

// IntExpr returns an Expr for the integer literal x.
func IntExpr(x int64) Expr {
	return Expr{Type: EInt, Int: x}
}

// StringExpr returns an Expr for the string literal s.
func StringExpr(s string) Expr {
	return Expr{Type: EString, Str: s}
}

// SymbolExpr returns an Expr for the symbol name.
func SymbolExpr(name string) Expr {
	return Expr{Type: ESymbol, Str: name}
}

// KeywordExpr returns an Expr for the keyword :name.
func KeywordExpr(name string) Expr {
	return Expr{Type: EKeyword, Str: name}
}

// NilExpr returns the nil literal.
func NilExpr() Expr {
	return Expr{Type: ENil}
}

// BoolExpr returns a boolean literal.
func BoolExpr(b bool) Expr {
	return Expr{Type: EBool, Bool: b}
}

// ListExpr returns a parenthesized list of cells.
func ListExpr(cells ...Expr) Expr {
	return Expr{Type: EList, Cells: cells}
}

// VectorExpr returns a bracketed vector of cells.
func VectorExpr(cells ...Expr) Expr {
	return Expr{Type: EVector, Cells: cells}
}

// HashMapExpr returns a hash-map literal with the given pairs in order.
func HashMapExpr(pairs ...ExprPair) Expr {
	return Expr{Type: EHashMap, Pairs: pairs}
}

// QuoteExpr wraps x in one of the quote forms.  QuoteExpr panics if typ is not
// EQuote, EQuasiquote, EUnquote, or ESpliceUnquote.
func QuoteExpr(typ ExprType, x Expr) Expr {
	switch typ {
	case EQuote, EQuasiquote, EUnquote, ESpliceUnquote:
	default:
		panic("not a quote form: " + typ.String())
	}
	return Expr{Type: typ, Cells: []Expr{x}}
}

// IsSymbol returns true if x is the symbol name.
func (x Expr) IsSymbol(name string) bool {
	return x.Type == ESymbol && x.Str == name
}

// Equal compares x and y structurally.
func (x Expr) Equal(y Expr) bool {
	if x.Type != y.Type {
		return false
	}
	switch x.Type {
	case EInt:
		return x.Int == y.Int
	case EString, ESymbol, EKeyword:
		return x.Str == y.Str
	case EBool:
		return x.Bool == y.Bool
	case ENil:
		return true
	case EHashMap:
		if len(x.Pairs) != len(y.Pairs) {
			return false
		}
		for i := range x.Pairs {
			if !x.Pairs[i].Key.Equal(y.Pairs[i].Key) || !x.Pairs[i].Value.Equal(y.Pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		if len(x.Cells) != len(y.Cells) {
			return false
		}
		for i := range x.Cells {
			if !x.Cells[i].Equal(y.Cells[i]) {
				return false
			}
		}
		return true
	}
}

func (x Expr) String() string {
	switch x.Type {
	case EInt:
		return strconv.FormatInt(x.Int, 10)
	case EString:
		return quoteString(x.Str)
	case ESymbol:
		return x.Str
	case EKeyword:
		return ":" + x.Str
	case ENil:
		return "nil"
	case EBool:
		return strconv.FormatBool(x.Bool)
	case EList:
		return exprString(x.Cells, "(", ")")
	case EVector:
		return exprString(x.Cells, "[", "]")
	case EHashMap:
		var buf bytes.Buffer
		buf.WriteString("{")
		for i, p := range x.Pairs {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(p.Key.String())
			buf.WriteString(" ")
			buf.WriteString(p.Value.String())
		}
		buf.WriteString("}")
		return buf.String()
	case EQuote, EQuasiquote, EUnquote, ESpliceUnquote:
		return "(" + x.Type.String() + " " + x.Cells[0].String() + ")"
	default:
		return "#<invalid>"
	}
}

func exprString(cells []Expr, left string, right string) string {
	if len(cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
