package lisp

import (
	"errors"
	"io"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *Env) error

// WithStdout returns a Config that makes prn and println write to w instead
// of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *Env) error {
		if w == nil {
			return errors.New("nil stdout writer")
		}
		env.Runtime.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *Env) error {
		if w == nil {
			return errors.New("nil stderr writer")
		}
		env.Runtime.Stderr = w
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// text.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *Env) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithMaximumStackHeight returns a Config that limits the depth of nested
// function applications to n.  Exceeding the limit is a runtime error.
func WithMaximumStackHeight(n int) Config {
	return func(env *Env) error {
		if n < 0 {
			return errors.New("negative maximum stack height")
		}
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}
