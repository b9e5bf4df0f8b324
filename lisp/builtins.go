package lisp

import (
	"fmt"
	"io"
)

var langBuiltins = []*BuiltinOnValues{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"=", builtinEqual},
	{"<", builtinLT},
	{"<=", builtinLEq},
	{">", builtinGT},
	{">=", builtinGEq},
	{"list", builtinList},
	{"list?", builtinListP},
	{"vector", builtinVector},
	{"vector?", builtinVectorP},
	{"empty?", builtinEmptyP},
	{"count", builtinCount},
	{"atom", builtinAtom},
	{"atom?", builtinAtomP},
	{"deref", builtinDeref},
	{"reset!", builtinReset},
	{"swap!", builtinSwap},
	{"str", builtinStr},
	{"pr-str", builtinPrStr},
	{"prn", builtinPrn},
	{"println", builtinPrintln},
}

// DefaultBuiltins returns the builtin functions added to environments when
// Env.AddBuiltins is called without arguments.
func DefaultBuiltins() []*BuiltinOnValues {
	funs := make([]*BuiltinOnValues, len(langBuiltins))
	copy(funs, langBuiltins)
	return funs
}

// RootEnvironment returns a new root environment holding every special form
// and builtin function, configured by configs.
func RootEnvironment(configs ...Config) (*Env, error) {
	env := NewEnv(nil)
	for _, config := range configs {
		err := config(env)
		if err != nil {
			return nil, err
		}
	}
	env.AddSpecialOps()
	env.AddBuiltins()
	return env, nil
}

// assertArity returns a WrongNumberOfArgs error unless there are exactly n
// args.
func assertArity(args []Value, n int) error {
	if len(args) != n {
		return arityError(len(args), n)
	}
	return nil
}

func assertMinArity(args []Value, n int) error {
	if len(args) < n {
		return arityError(len(args), n)
	}
	return nil
}

func intArgs(name string, args []Value) (int64, int64, error) {
	err := assertArity(args, 2)
	if err != nil {
		return 0, 0, err
	}
	for i := range args {
		if args[i].Type != LInt {
			return 0, 0, typeErrorf("%s: argument %d is not an int: %v", name, i+1, args[i].Type)
		}
	}
	return args[0].Int, args[1].Int, nil
}

func builtinAdd(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs("+", args)
	if err != nil {
		return Value{}, err
	}
	return Int(a + b), nil
}

func builtinSub(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs("-", args)
	if err != nil {
		return Value{}, err
	}
	return Int(a - b), nil
}

func builtinMul(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs("*", args)
	if err != nil {
		return Value{}, err
	}
	return Int(a * b), nil
}

func builtinDiv(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs("/", args)
	if err != nil {
		return Value{}, err
	}
	if b == 0 {
		return Value{}, &RuntimeError{Kind: KindDivideByZero, Value: &args[0]}
	}
	if b == -1 {
		// the quotient of math.MinInt64 and -1 overflows and would panic.
		return Int(-a), nil
	}
	return Int(a / b), nil
}

func builtinEqual(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 2)
	if err != nil {
		return Value{}, err
	}
	return Bool(Equal(args[0], args[1])), nil
}

func builtinLT(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs("<", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a < b), nil
}

func builtinLEq(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs("<=", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a <= b), nil
}

func builtinGT(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs(">", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a > b), nil
}

func builtinGEq(env *Env, args []Value) (Value, error) {
	a, b, err := intArgs(">=", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a >= b), nil
}

func builtinList(env *Env, args []Value) (Value, error) {
	return List(copyValues(args)...), nil
}

func builtinListP(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	return Bool(args[0].Type == LList), nil
}

func builtinVector(env *Env, args []Value) (Value, error) {
	return Vector(copyValues(args)...), nil
}

func builtinVectorP(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	return Bool(args[0].Type == LVector), nil
}

func builtinEmptyP(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	seq, err := args[0].Seq()
	if err != nil {
		return Value{}, err
	}
	return Bool(len(seq) == 0), nil
}

func builtinCount(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	seq, err := args[0].Seq()
	if err != nil {
		return Value{}, err
	}
	return Int(int64(len(seq))), nil
}

func builtinAtom(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	return NewAtom(args[0]), nil
}

func builtinAtomP(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	return Bool(args[0].Type == LAtom), nil
}

func atomArg(name string, v Value) (*Atom, error) {
	if v.Type != LAtom {
		return nil, typeErrorf("%s: argument is not an atom: %v", name, v.Type)
	}
	return v.Atom, nil
}

func builtinDeref(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 1)
	if err != nil {
		return Value{}, err
	}
	a, err := atomArg("deref", args[0])
	if err != nil {
		return Value{}, err
	}
	return a.Val, nil
}

func builtinReset(env *Env, args []Value) (Value, error) {
	err := assertArity(args, 2)
	if err != nil {
		return Value{}, err
	}
	a, err := atomArg("reset!", args[0])
	if err != nil {
		return Value{}, err
	}
	a.Val = args[1]
	return a.Val, nil
}

// (swap! atom fn arg...)
func builtinSwap(env *Env, args []Value) (Value, error) {
	err := assertMinArity(args, 2)
	if err != nil {
		return Value{}, err
	}
	a, err := atomArg("swap!", args[0])
	if err != nil {
		return Value{}, err
	}
	fargs := make([]Value, 0, len(args)-1)
	fargs = append(fargs, a.Val)
	fargs = append(fargs, args[2:]...)
	val, err := env.Call(args[1], fargs)
	if err != nil {
		return Value{}, err
	}
	a.Val = val
	return val, nil
}

func builtinStr(env *Env, args []Value) (Value, error) {
	return String(PrintJoin(args, false, "")), nil
}

func builtinPrStr(env *Env, args []Value) (Value, error) {
	return String(PrintJoin(args, true, " ")), nil
}

func builtinPrn(env *Env, args []Value) (Value, error) {
	return printLine(env.Runtime.Stdout, PrintJoin(args, true, " "))
}

func builtinPrintln(env *Env, args []Value) (Value, error) {
	return printLine(env.Runtime.Stdout, PrintJoin(args, false, " "))
}

func printLine(w io.Writer, s string) (Value, error) {
	_, err := fmt.Fprintln(w, s)
	if err != nil {
		return Value{}, err
	}
	return Nil(), nil
}

func copyValues(vals []Value) []Value {
	if len(vals) == 0 {
		return nil
	}
	cp := make([]Value, len(vals))
	copy(cp, vals)
	return cp
}
