package lisp

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of a RuntimeError.
type ErrorKind uint

// Possible ErrorKind values
const (
	KindInvalid ErrorKind = iota
	KindUnboundSymbol
	KindCannotApplyNonFunction
	KindWrongNumberOfArgs
	KindIncorrectType
	KindExpectedToBindSymbol
	KindUnmatchedLetBindingID
	KindHashError
	KindParseError
	KindInvalidParameterList
	KindDivideByZero
	KindUnimplemented
	KindStackOverflow
)

var errorKindStrings = []string{
	KindInvalid:                "INVALID",
	KindUnboundSymbol:          "unbound symbol",
	KindCannotApplyNonFunction: "cannot apply non-function",
	KindWrongNumberOfArgs:      "wrong number of arguments",
	KindIncorrectType:          "incorrect type",
	KindExpectedToBindSymbol:   "expected to bind a symbol",
	KindUnmatchedLetBindingID:  "unmatched let* binding",
	KindHashError:              "attempted to hash an unhashable value",
	KindParseError:             "parse error",
	KindInvalidParameterList:   "invalid parameter list",
	KindDivideByZero:           "division by zero",
	KindUnimplemented:          "unimplemented",
	KindStackOverflow:          "maximum call depth exceeded",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[KindInvalid]
	}
	return errorKindStrings[k]
}

// TypeError refines a KindIncorrectType RuntimeError.
type TypeError uint

// Possible TypeError values.  The zero value is only used by the
// ErrIncorrectType sentinel, where it matches any TypeError.
const (
	TypeMisc TypeError = iota + 1
	TypeNotASeq
)

// RuntimeError is the error returned by any failed evaluation.  Which fields
// are meaningful depends on Kind.
type RuntimeError struct {
	Kind ErrorKind

	Symbol   string    // KindUnboundSymbol
	Given    int       // KindWrongNumberOfArgs
	Expected int       // KindWrongNumberOfArgs
	TypeErr  TypeError // KindIncorrectType
	Value    *Value    // offending value, when there is one
	Msg      string    // extra context
	Err      error     // KindParseError cause
}

// Sentinel errors for use with errors.Is.  A sentinel matches any
// RuntimeError of the same kind.
var (
	ErrUnboundSymbol          = &RuntimeError{Kind: KindUnboundSymbol}
	ErrCannotApplyNonFunction = &RuntimeError{Kind: KindCannotApplyNonFunction}
	ErrWrongNumberOfArgs      = &RuntimeError{Kind: KindWrongNumberOfArgs}
	ErrIncorrectType          = &RuntimeError{Kind: KindIncorrectType}
	ErrNotASeq                = &RuntimeError{Kind: KindIncorrectType, TypeErr: TypeNotASeq}
	ErrExpectedToBindSymbol   = &RuntimeError{Kind: KindExpectedToBindSymbol}
	ErrUnmatchedLetBindingID  = &RuntimeError{Kind: KindUnmatchedLetBindingID}
	ErrHash                   = &RuntimeError{Kind: KindHashError}
	ErrParse                  = &RuntimeError{Kind: KindParseError}
	ErrInvalidParameterList   = &RuntimeError{Kind: KindInvalidParameterList}
	ErrDivideByZero           = &RuntimeError{Kind: KindDivideByZero}
	ErrUnimplemented          = &RuntimeError{Kind: KindUnimplemented}
	ErrStackOverflow          = &RuntimeError{Kind: KindStackOverflow}
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Kind.String())
	switch e.Kind {
	case KindUnboundSymbol:
		buf.WriteString(": ")
		buf.WriteString(e.Symbol)
	case KindWrongNumberOfArgs:
		fmt.Fprintf(&buf, " (given %d, expected %d)", e.Given, e.Expected)
	case KindParseError:
		if e.Err != nil {
			buf.WriteString(": ")
			buf.WriteString(e.Err.Error())
		}
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Value != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Value.String())
	}
	return buf.String()
}

// Unwrap returns the cause of a parse error.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a RuntimeError sentinel of the same kind.
func (e *RuntimeError) Is(target error) bool {
	t, ok := target.(*RuntimeError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.TypeErr == 0 || t.TypeErr == e.TypeErr
}

func unboundSymbolError(name string) error {
	return &RuntimeError{Kind: KindUnboundSymbol, Symbol: name}
}

func nonFunctionError(v Value) error {
	return &RuntimeError{Kind: KindCannotApplyNonFunction, Value: &v}
}

func arityError(given, expected int) error {
	return &RuntimeError{Kind: KindWrongNumberOfArgs, Given: given, Expected: expected}
}

func typeErrorf(format string, v ...interface{}) error {
	return &RuntimeError{Kind: KindIncorrectType, TypeErr: TypeMisc, Msg: fmt.Sprintf(format, v...)}
}

func notASeqError(v Value) error {
	return &RuntimeError{Kind: KindIncorrectType, TypeErr: TypeNotASeq, Msg: "not a sequence", Value: &v}
}

func bindSymbolError(x Expr) error {
	return &RuntimeError{Kind: KindExpectedToBindSymbol, Msg: x.String()}
}

func unmatchedLetBindingError(x Expr) error {
	return &RuntimeError{Kind: KindUnmatchedLetBindingID, Msg: x.String()}
}

func hashError(v Value) error {
	return &RuntimeError{Kind: KindHashError, Value: &v}
}

// ParseError wraps an error returned by a Reader.
func ParseError(err error) error {
	return &RuntimeError{Kind: KindParseError, Err: err}
}

func paramListErrorf(format string, v ...interface{}) error {
	return &RuntimeError{Kind: KindInvalidParameterList, Msg: fmt.Sprintf(format, v...)}
}

func unimplementedError(x Expr) error {
	return &RuntimeError{Kind: KindUnimplemented, Msg: x.Type.String()}
}
