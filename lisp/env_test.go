package lisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLookup(t *testing.T) {
	root := NewEnv(nil)
	root.Define("a", Int(1))
	root.Define("b", Int(2))
	env := root.Child()
	assert.Same(t, root, env.Parent)
	assert.Same(t, root.Runtime, env.Runtime)
	assert.NotEqual(t, root.ID, env.ID)

	env.Define("b", Int(3))
	v, ok := env.Lookup("a")
	if assert.True(t, ok) {
		assert.Equal(t, Int(1), v)
	}
	v, ok = env.Lookup("b")
	if assert.True(t, ok) {
		assert.Equal(t, Int(3), v)
	}
	v, ok = root.Lookup("b")
	if assert.True(t, ok) {
		assert.Equal(t, Int(2), v)
	}
	_, ok = env.Lookup("c")
	assert.False(t, ok)
}

func TestEnvLookupOrError(t *testing.T) {
	env := NewEnv(nil).Child()
	_, err := env.LookupOrError("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnboundSymbol))
	var rerr *RuntimeError
	if assert.True(t, errors.As(err, &rerr)) {
		assert.Equal(t, "missing", rerr.Symbol)
	}
	assert.Equal(t, "unbound symbol: missing", err.Error())
}

func TestEnvSharedFrames(t *testing.T) {
	root := NewEnv(nil)
	root.AddSpecialOps()
	root.AddBuiltins()
	frame := root.Child()

	// (fn* () x) created in frame before x exists
	fn, err := frame.Eval(ListExpr(SymbolExpr(SymbolFn), ListExpr(), SymbolExpr("x")))
	require.NoError(t, err)
	require.Equal(t, LFun, fn.Type)
	closure, ok := fn.Fun.(*Closure)
	require.True(t, ok)
	assert.Same(t, frame, closure.Env)

	frame.Define("x", Int(7))
	v, err := root.Call(fn, nil)
	require.NoError(t, err)
	assert.Equal(t, Int(7), v)

	_, ok = root.Lookup("x")
	assert.False(t, ok)
}

func TestEnvCall(t *testing.T) {
	env, err := RootEnvironment()
	require.NoError(t, err)

	plus, ok := env.Lookup("+")
	require.True(t, ok)
	v, err := env.Call(plus, []Value{Int(1), Int(2)})
	require.NoError(t, err)
	assert.Equal(t, Int(3), v)

	_, err = env.Call(Int(1), nil)
	assert.True(t, errors.Is(err, ErrCannotApplyNonFunction))

	ifop, ok := env.Lookup(SymbolIf)
	require.True(t, ok)
	_, err = env.Call(ifop, []Value{Bool(true), Int(1)})
	assert.True(t, errors.Is(err, ErrIncorrectType))

	fn := Fun(&Closure{Env: env, Params: []string{"a"}, Variadic: "rest", Body: SymbolExpr("rest")})
	v, err = env.Call(fn, []Value{Int(1), Int(2), Int(3)})
	require.NoError(t, err)
	assert.True(t, Equal(List(Int(2), Int(3)), v))
	assert.Equal(t, LList, v.Type)
}

func TestEvaluate(t *testing.T) {
	env, err := RootEnvironment()
	require.NoError(t, err)

	x := ListExpr(SymbolExpr("+"), IntExpr(1), ListExpr(SymbolExpr("*"), IntExpr(2), IntExpr(3)))
	v, err := Evaluate(x, env)
	require.NoError(t, err)
	assert.Equal(t, Int(7), v)

	v, err = Evaluate(HashMapExpr(ExprPair{KeywordExpr("a"), StringExpr("b")}), env)
	require.NoError(t, err)
	require.Equal(t, LHashMap, v.Type)
	val, ok := v.Map.Get(HashableValue{Type: LKeyword, Str: "a"})
	if assert.True(t, ok) {
		assert.Equal(t, String("b"), val)
	}

	_, err = Evaluate(QuoteExpr(EQuote, SymbolExpr("a")), env)
	assert.True(t, errors.Is(err, ErrUnimplemented))

	_, err = Evaluate(Expr{}, env)
	assert.Error(t, err)
}

func TestStackHeight(t *testing.T) {
	env, err := RootEnvironment(WithMaximumStackHeight(50))
	require.NoError(t, err)
	// (def! loop (fn* (n) (loop (+ n 1))))
	def := ListExpr(SymbolExpr(SymbolDef), SymbolExpr("loop"),
		ListExpr(SymbolExpr(SymbolFn), ListExpr(SymbolExpr("n")),
			ListExpr(SymbolExpr("loop"), ListExpr(SymbolExpr("+"), SymbolExpr("n"), IntExpr(1)))))
	_, err = env.Eval(def)
	require.NoError(t, err)
	_, err = env.Eval(ListExpr(SymbolExpr("loop"), IntExpr(0)))
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, 0, env.Runtime.Stack.Height())

	_, err = RootEnvironment(WithMaximumStackHeight(-1))
	assert.Error(t, err)
}

func TestEvaluateProgramNoReader(t *testing.T) {
	env, err := RootEnvironment()
	require.NoError(t, err)
	_, err = EvaluateProgram("(+ 1 2)", env)
	assert.True(t, errors.Is(err, ErrParse))
}
