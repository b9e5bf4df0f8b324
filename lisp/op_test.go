package lisp_test

import (
	"testing"

	"github.com/nsalesky/mal/lisptest"
)

func TestSpecialOp(t *testing.T) {
	tests := lisptest.TestSuite{
		{"if", lisptest.TestSequence{
			{"(if true 1 2)", "1", ""},
			{"(if false 1 2)", "2", ""},
			{"(if nil 1 2)", "2", ""},
			{"(if 0 1 2)", "1", ""},
			{"(if () 1 2)", "1", ""},
			{"(if [] 1 2)", "1", ""},
			{`(if "" 1 2)`, "1", ""},
			{"(if false 1)", "nil", ""},
			{"(if true 1)", "1", ""},
			{"(if true (prn :then) (prn :else))", "nil", ":then\n"},
			{"(if false (prn :then) (prn :else))", "nil", ":else\n"},
			{"(if true)", "wrong number of arguments (given 1, expected 2)", ""},
			{"(if true 1 2 3)", "wrong number of arguments (given 4, expected 3)", ""},
			{"(if x 1 2)", "unbound symbol: x", ""},
		}},
		{"do", lisptest.TestSequence{
			{"(do 1 2 3)", "3", ""},
			{"(do (prn 1) (prn 2) 3)", "3", "1\n2\n"},
			{"(do (def! a 1) (def! b (+ a 1)) (+ a b))", "3", ""},
			{"(do)", "wrong number of arguments (given 0, expected 1)", ""},
			{"(do (prn 1) x (prn 2))", "unbound symbol: x", "1\n"},
		}},
		{"def!", lisptest.TestSequence{
			{"(def! x (+ 1 2))", "3", ""},
			{"x", "3", ""},
			{"(def! x 4)", "4", ""},
			{"x", "4", ""},
			{"(def! 1 (prn 2))", "expected to bind a symbol: 1", ""},
			{`(def! "y" 2)`, `expected to bind a symbol: "y"`, ""},
			{"(def! y)", "wrong number of arguments (given 1, expected 2)", ""},
			{"(def! y z)", "unbound symbol: z", ""},
			{"y", "unbound symbol: y", ""},
		}},
		{"let*", lisptest.TestSequence{
			{"(let* () 1)", "1", ""},
			{"(let* [] 1)", "1", ""},
			{"(let* (a 1 b (+ a 1) c (+ b 1)) c)", "3", ""},
			{"(let* [a 1 b [a a]] b)", "[1 1]", ""},
			{"(let* (a 1 b) a)", "unmatched let* binding: b", ""},
			{"(let* (1 1) 1)", "expected to bind a symbol: 1", ""},
			{"(let* x 1)", "incorrect type: let* bindings are not a list or vector: symbol", ""},
			{"(let* (a 1))", "wrong number of arguments (given 1, expected 2)", ""},
			{"(let* (a 1) a a)", "wrong number of arguments (given 3, expected 2)", ""},
			{"a", "unbound symbol: a", ""},
		}},
		{"fn*", lisptest.TestSequence{
			{"(fn* (a) a)", "(fn ...)", ""},
			{"(fn* [a] a)", "(fn ...)", ""},
			{"(fn* (a b & c) a)", "(fn ...)", ""},
		}},
		{"special forms are values", lisptest.TestSequence{
			{"if", "(fn ...)", ""},
			{"(def! my-if if)", "(fn ...)", ""},
			{"(my-if false (prn 1) 2)", "2", ""},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}
