package lisp

import "fmt"

// LType is the type of a Value
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LInt
	LString
	LSymbol
	LKeyword
	LBool
	LNil
	LList
	LVector
	LHashMap
	LFun
	LAtom
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LInt:     "int",
	LString:  "string",
	LSymbol:  "symbol",
	LKeyword: "keyword",
	LBool:    "bool",
	LNil:     "nil",
	LList:    "list",
	LVector:  "vector",
	LHashMap: "hash-map",
	LFun:     "function",
	LAtom:    "atom",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// Value is a lisp runtime value.  Values are passed by value; the slices,
// maps, and cells they reference are shared.  List and vector cells are never
// modified once a Value holding them has been constructed.
type Value struct {
	Type  LType
	Int   int64
	Str   string // LString contents, LSymbol name, LKeyword name (without ':')
	Bool  bool
	Cells []Value
	Map   *HashMap
	Fun   FunctionBody
	Atom  *Atom
}

// Atom is a mutable cell.  Every Value referencing an Atom observes changes
// made through any of them.
type Atom struct {
	Val Value
}

// Int returns a Value representing the integer x.
func Int(x int64) Value {
	return Value{Type: LInt, Int: x}
}

// String returns a Value representing the string s.
func String(s string) Value {
	return Value{Type: LString, Str: s}
}

// Symbol returns a Value representing the symbol s.
func Symbol(s string) Value {
	return Value{Type: LSymbol, Str: s}
}

// Keyword returns a Value representing the keyword :s.
func Keyword(s string) Value {
	return Value{Type: LKeyword, Str: s}
}

// Bool returns a Value representing b.
func Bool(b bool) Value {
	return Value{Type: LBool, Bool: b}
}

// Nil returns a Value representing nil, the absent value.
func Nil() Value {
	return Value{Type: LNil}
}

// List returns a Value representing a list of cells.  The caller must not
// modify cells afterwards.
func List(cells ...Value) Value {
	return Value{Type: LList, Cells: cells}
}

// Vector returns a Value representing a vector of cells.  The caller must not
// modify cells afterwards.
func Vector(cells ...Value) Value {
	return Value{Type: LVector, Cells: cells}
}

// Map returns a Value representing the hash-map m.
func Map(m *HashMap) Value {
	return Value{Type: LHashMap, Map: m}
}

// Fun returns a Value representing a function.
func Fun(fn FunctionBody) Value {
	return Value{Type: LFun, Fun: fn}
}

// NewAtom returns a Value referencing a new Atom holding v.
func NewAtom(v Value) Value {
	return Value{Type: LAtom, Atom: &Atom{Val: v}}
}

// IsNil returns true if v is nil.
func (v Value) IsNil() bool {
	return v.Type == LNil
}

// IsTruthy returns false for nil and false and true for every other value,
// including 0 and empty sequences.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case LNil:
		return false
	case LBool:
		return v.Bool
	default:
		return true
	}
}

// IsSeq returns true if v is a list or a vector.
func (v Value) IsSeq() bool {
	return v.Type == LList || v.Type == LVector
}

// Seq returns the elements of v viewed as a sequence.  Nil is an empty
// sequence.  Seq returns a NotASeq type error for any value that is not a
// list, vector, or nil.
func (v Value) Seq() ([]Value, error) {
	switch v.Type {
	case LList, LVector:
		return v.Cells, nil
	case LNil:
		return nil, nil
	default:
		return nil, notASeqError(v)
	}
}

func (v Value) String() string {
	return Print(v, true)
}

// GoString implements fmt.GoStringer so that test failures are readable.
func (v Value) GoString() string {
	return fmt.Sprintf("lisp.Value{%s %s}", v.Type, Print(v, true))
}

// FunctionBody is the implementation of a function value.  The only
// implementations are *BuiltinOnValues, *BuiltinOnExpressions, and *Closure.
type FunctionBody interface {
	functionBody()
}

// BuiltinOnValues is a primitive function that receives evaluated arguments.
type BuiltinOnValues struct {
	Name string
	Fn   func(env *Env, args []Value) (Value, error)
}

// BuiltinOnExpressions is a special form.  It receives its argument
// expressions unevaluated along with the caller's environment and decides
// what to evaluate itself.
type BuiltinOnExpressions struct {
	Name string
	Fn   func(env *Env, args []Expr) (Value, error)
}

// Closure is a user defined function.  Env is the environment that was active
// when the closure was created and is shared, not copied.
type Closure struct {
	Env      *Env
	Params   []string
	Variadic string // empty when the closure is not variadic
	Body     Expr
}

func (*BuiltinOnValues) functionBody()      {}
func (*BuiltinOnExpressions) functionBody() {}
func (*Closure) functionBody()              {}

// HashableValue is the subset of values usable as hash-map keys: integers,
// strings, and keywords.
type HashableValue struct {
	Type LType
	Int  int64
	Str  string
}

// Hashable converts v into a HashableValue.  A HashError is returned for any
// value that is not an integer, string, or keyword.
func Hashable(v Value) (HashableValue, error) {
	switch v.Type {
	case LInt:
		return HashableValue{Type: LInt, Int: v.Int}, nil
	case LString, LKeyword:
		return HashableValue{Type: v.Type, Str: v.Str}, nil
	default:
		return HashableValue{}, hashError(v)
	}
}

// Value converts k back into a Value.
func (k HashableValue) Value() Value {
	switch k.Type {
	case LInt:
		return Int(k.Int)
	case LString:
		return String(k.Str)
	default:
		return Keyword(k.Str)
	}
}
