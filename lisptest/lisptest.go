package lisptest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/nsalesky/mal/lisp"
	"github.com/nsalesky/mal/parser"
)

// NewEnv returns a root environment which reads source with the default
// parser and writes printed output to stdout.
func NewEnv(stdout io.Writer) (*lisp.Env, error) {
	env, err := lisp.RootEnvironment(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithStderr(stdout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Env.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result or error message
	Output string // text written to stdout during evaluation
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.Envs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var buf bytes.Buffer
		env, err := NewEnv(&buf)
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			buf.Reset()
			x, err := parseOne(expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: %v", i, test.Name, j, err)
				continue
			}
			result := evalString(env, x)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if buf.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, buf.String())
			}
		}
	}
}

func parseOne(source string) (lisp.Expr, error) {
	exprs, err := parser.NewReader().Read("test", strings.NewReader(source))
	if err != nil {
		return lisp.Expr{}, fmt.Errorf("parse error: %w", err)
	}
	if len(exprs) != 1 {
		return lisp.Expr{}, fmt.Errorf("expected one expression (got %d)", len(exprs))
	}
	return exprs[0], nil
}

func evalString(env *lisp.Env, x lisp.Expr) string {
	v, err := env.Eval(x)
	if err != nil {
		return err.Error()
	}
	return v.String()
}
