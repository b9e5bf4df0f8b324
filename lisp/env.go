package lisp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Runtime holds the state shared by every frame descending from one root
// environment.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
	Reader Reader
	Stack  *CallStack
}

// Env is a lisp environment frame.  Frames are shared by pointer: a closure
// holds the frame it was created in and every binding later added to that
// frame is visible through the closure.
type Env struct {
	ID      uint
	Scope   map[string]Value
	Parent  *Env
	Runtime *Runtime
}

// NewEnv initializes and returns a new Env.  A child frame shares the Runtime
// of its parent.
func NewEnv(parent *Env) *Env {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = &Runtime{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Stack:  &CallStack{},
		}
	}
	return &Env{
		ID:      getEnvID(),
		Scope:   make(map[string]Value),
		Parent:  parent,
		Runtime: runtime,
	}
}

// Child returns a new frame whose parent is env.
func (env *Env) Child() *Env {
	return NewEnv(env)
}

// Lookup returns the value bound to name in env or the nearest ancestor frame
// binding it.
func (env *Env) Lookup(name string) (Value, bool) {
	for ; env != nil; env = env.Parent {
		v, ok := env.Scope[name]
		if ok {
			return v, true
		}
	}
	return Value{}, false
}

// LookupOrError is like Lookup but returns an UnboundSymbol error when name
// is not bound.
func (env *Env) LookupOrError(name string) (Value, error) {
	v, ok := env.Lookup(name)
	if !ok {
		return Value{}, unboundSymbolError(name)
	}
	return v, nil
}

// Define binds name to v in env's own frame, replacing any previous binding
// in that frame.  Parent frames are never modified.
func (env *Env) Define(name string, v Value) {
	env.Scope[name] = v
}

// AddSpecialOps binds the given special forms to their names in env.  When
// called with no arguments AddSpecialOps adds DefaultSpecialOps to env.
func (env *Env) AddSpecialOps(ops ...*BuiltinOnExpressions) {
	if len(ops) == 0 {
		ops = DefaultSpecialOps()
	}
	for _, op := range ops {
		env.Define(op.Name, Fun(op))
	}
}

// AddBuiltins binds the given builtins to their names in env.  When called
// with no arguments AddBuiltins adds DefaultBuiltins to env.
func (env *Env) AddBuiltins(funs ...*BuiltinOnValues) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, fn := range funs {
		env.Define(fn.Name, Fun(fn))
	}
}

// Evaluate evaluates expr in env.
func Evaluate(expr Expr, env *Env) (Value, error) {
	return env.Eval(expr)
}

// Eval evaluates expr in env and returns the result.
func (env *Env) Eval(expr Expr) (Value, error) {
	switch expr.Type {
	case EInt:
		return Int(expr.Int), nil
	case EString:
		return String(expr.Str), nil
	case EKeyword:
		return Keyword(expr.Str), nil
	case ENil:
		return Nil(), nil
	case EBool:
		return Bool(expr.Bool), nil
	case ESymbol:
		return env.LookupOrError(expr.Str)
	case EVector:
		cells, err := env.evalCells(expr.Cells)
		if err != nil {
			return Value{}, err
		}
		return Vector(cells...), nil
	case EHashMap:
		return env.evalHashMap(expr.Pairs)
	case EList:
		return env.evalList(expr.Cells)
	case EQuote, EQuasiquote, EUnquote, ESpliceUnquote:
		return Value{}, unimplementedError(expr)
	default:
		return Value{}, fmt.Errorf("invalid expression type: %v", expr.Type)
	}
}

func (env *Env) evalCells(exprs []Expr) ([]Value, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	cells := make([]Value, len(exprs))
	for i := range exprs {
		v, err := env.Eval(exprs[i])
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}
	return cells, nil
}

func (env *Env) evalHashMap(pairs []ExprPair) (Value, error) {
	m := NewHashMap()
	for _, p := range pairs {
		k, err := env.Eval(p.Key)
		if err != nil {
			return Value{}, err
		}
		v, err := env.Eval(p.Value)
		if err != nil {
			return Value{}, err
		}
		hk, err := Hashable(k)
		if err != nil {
			return Value{}, err
		}
		m.Put(hk, v)
	}
	return Map(m), nil
}

func (env *Env) evalList(cells []Expr) (Value, error) {
	if len(cells) == 0 {
		return List(), nil
	}
	head, err := env.Eval(cells[0])
	if err != nil {
		return Value{}, err
	}
	if head.Type != LFun {
		return Value{}, nonFunctionError(head)
	}
	return env.Apply(head.Fun, cells[1:])
}

// Apply applies fn to the argument expressions args, where env is the
// caller's environment.  Special forms receive args unevaluated.  Every
// other function receives the values of args evaluated left to right in env.
func (env *Env) Apply(fn FunctionBody, args []Expr) (Value, error) {
	switch fn := fn.(type) {
	case *BuiltinOnExpressions:
		err := env.Runtime.Stack.Push(CallFrame{Name: fn.Name, Special: true})
		if err != nil {
			return Value{}, err
		}
		defer env.Runtime.Stack.Pop()
		return fn.Fn(env, args)
	case *BuiltinOnValues:
		vals, err := env.evalCells(args)
		if err != nil {
			return Value{}, err
		}
		return env.callBuiltin(fn, vals)
	case *Closure:
		err := fn.checkArity(len(args))
		if err != nil {
			return Value{}, err
		}
		vals, err := env.evalCells(args)
		if err != nil {
			return Value{}, err
		}
		return env.callClosure(fn, vals)
	default:
		return Value{}, fmt.Errorf("unknown function body: %T", fn)
	}
}

// Call applies fn to already evaluated arguments.  Special forms cannot be
// called this way because their arguments must be expressions.
func (env *Env) Call(fn Value, args []Value) (Value, error) {
	if fn.Type != LFun {
		return Value{}, nonFunctionError(fn)
	}
	switch body := fn.Fun.(type) {
	case *BuiltinOnValues:
		return env.callBuiltin(body, args)
	case *Closure:
		err := body.checkArity(len(args))
		if err != nil {
			return Value{}, err
		}
		return env.callClosure(body, args)
	case *BuiltinOnExpressions:
		return Value{}, typeErrorf("special form %s cannot be called with values", body.Name)
	default:
		return Value{}, fmt.Errorf("unknown function body: %T", body)
	}
}

func (env *Env) callBuiltin(fn *BuiltinOnValues, args []Value) (Value, error) {
	err := env.Runtime.Stack.Push(CallFrame{Name: fn.Name})
	if err != nil {
		return Value{}, err
	}
	defer env.Runtime.Stack.Pop()
	return fn.Fn(env, args)
}

func (env *Env) callClosure(c *Closure, args []Value) (Value, error) {
	err := env.Runtime.Stack.Push(CallFrame{Name: c.frameName()})
	if err != nil {
		return Value{}, err
	}
	defer env.Runtime.Stack.Pop()

	frame := c.Env.Child()
	for i, name := range c.Params {
		frame.Define(name, args[i])
	}
	if c.Variadic != "" {
		var rest []Value
		if len(args) > len(c.Params) {
			rest = make([]Value, len(args)-len(c.Params))
			copy(rest, args[len(c.Params):])
		}
		frame.Define(c.Variadic, List(rest...))
	}
	return frame.Eval(c.Body)
}

func (c *Closure) checkArity(n int) error {
	if n < len(c.Params) || (c.Variadic == "" && n != len(c.Params)) {
		return arityError(n, len(c.Params))
	}
	return nil
}

func (c *Closure) frameName() string {
	return fmt.Sprintf("anon%d", c.Env.ID)
}

// Load reads source from r using the configured Reader and evaluates each
// top-level expression in env, returning the result of the last one.
func (env *Env) Load(name string, r io.Reader) (Value, error) {
	exprs, err := env.read(name, r)
	if err != nil {
		return Value{}, err
	}
	ret := Nil()
	for _, x := range exprs {
		ret, err = env.Eval(x)
		if err != nil {
			return Value{}, err
		}
	}
	return ret, nil
}

// LoadString is like Load but reads source from a string.
func (env *Env) LoadString(name, source string) (Value, error) {
	return env.Load(name, strings.NewReader(source))
}

func (env *Env) read(name string, r io.Reader) ([]Expr, error) {
	reader := env.Runtime.Reader
	if reader == nil {
		return nil, ParseError(errors.New("no reader configured"))
	}
	exprs, err := reader.Read(name, r)
	if err != nil {
		return nil, ParseError(err)
	}
	return exprs, nil
}

// EvaluateProgram parses text into top-level expressions and evaluates them
// in order against env.  The readable form of each result is written to the
// returned string followed by a newline.  The first error aborts evaluation
// and no output is returned, although bindings made by earlier expressions
// remain in env.
func EvaluateProgram(text string, env *Env) (string, error) {
	return EvaluateSource("", text, env)
}

// EvaluateSource is like EvaluateProgram but reports parse error locations
// against the source name.
func EvaluateSource(name, text string, env *Env) (string, error) {
	exprs, err := env.read(name, strings.NewReader(text))
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	for _, x := range exprs {
		v, err := env.Eval(x)
		if err != nil {
			return "", err
		}
		buf.WriteString(Print(v, true))
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
