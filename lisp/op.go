package lisp

var langSpecialOps = []*BuiltinOnExpressions{
	{SymbolIf, opIf},
	{SymbolDo, opDo},
	{SymbolDef, opDef},
	{SymbolLet, opLetSeq},
	{SymbolFn, opFn},
}

// DefaultSpecialOps returns the special forms added to environments when
// Env.AddSpecialOps is called without arguments.
func DefaultSpecialOps() []*BuiltinOnExpressions {
	ops := make([]*BuiltinOnExpressions, len(langSpecialOps))
	copy(ops, langSpecialOps)
	return ops
}

// (if test-form then-form [else-form])
func opIf(env *Env, args []Expr) (Value, error) {
	if len(args) < 2 {
		return Value{}, arityError(len(args), 2)
	}
	if len(args) > 3 {
		return Value{}, arityError(len(args), 3)
	}
	test, err := env.Eval(args[0])
	if err != nil {
		return Value{}, err
	}
	if test.IsTruthy() {
		return env.Eval(args[1])
	}
	if len(args) == 3 {
		return env.Eval(args[2])
	}
	return Nil(), nil
}

// (do expr...)
func opDo(env *Env, args []Expr) (Value, error) {
	if len(args) == 0 {
		return Value{}, arityError(0, 1)
	}
	var val Value
	for _, x := range args {
		var err error
		val, err = env.Eval(x)
		if err != nil {
			return Value{}, err
		}
	}
	return val, nil
}

// (def! symbol expr)
func opDef(env *Env, args []Expr) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError(len(args), 2)
	}
	if args[0].Type != ESymbol {
		return Value{}, bindSymbolError(args[0])
	}
	val, err := env.Eval(args[1])
	if err != nil {
		return Value{}, err
	}
	env.Define(args[0].Str, val)
	return val, nil
}

// (let* (name expr ...) body)
func opLetSeq(env *Env, args []Expr) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError(len(args), 2)
	}
	bindlist := args[0]
	if bindlist.Type != EList && bindlist.Type != EVector {
		return Value{}, typeErrorf("let* bindings are not a list or vector: %v", bindlist.Type)
	}
	if len(bindlist.Cells)%2 != 0 {
		return Value{}, unmatchedLetBindingError(bindlist.Cells[len(bindlist.Cells)-1])
	}
	letenv := env.Child()
	for i := 0; i < len(bindlist.Cells); i += 2 {
		name := bindlist.Cells[i]
		if name.Type != ESymbol {
			return Value{}, bindSymbolError(name)
		}
		val, err := letenv.Eval(bindlist.Cells[i+1])
		if err != nil {
			return Value{}, err
		}
		letenv.Define(name.Str, val)
	}
	return letenv.Eval(args[1])
}

// (fn* (param... [& rest]) body)
func opFn(env *Env, args []Expr) (Value, error) {
	if len(args) != 2 {
		return Value{}, arityError(len(args), 2)
	}
	params, variadic, err := parseFormals(args[0])
	if err != nil {
		return Value{}, err
	}
	return Fun(&Closure{
		Env:      env,
		Params:   params,
		Variadic: variadic,
		Body:     args[1],
	}), nil
}

// parseFormals splits a parameter list into its positional names and the
// optional variadic name following VarArgSymbol.
func parseFormals(formals Expr) (params []string, variadic string, err error) {
	if formals.Type != EList && formals.Type != EVector {
		return nil, "", typeErrorf("parameters are not a list or vector: %v", formals.Type)
	}
	for i, x := range formals.Cells {
		if x.Type != ESymbol {
			return nil, "", bindSymbolError(x)
		}
		if !x.IsSymbol(VarArgSymbol) {
			params = append(params, x.Str)
			continue
		}
		rest := formals.Cells[i+1:]
		if len(rest) != 1 {
			return nil, "", paramListErrorf("%s must be followed by exactly one symbol", VarArgSymbol)
		}
		if rest[0].Type != ESymbol {
			return nil, "", bindSymbolError(rest[0])
		}
		if rest[0].IsSymbol(VarArgSymbol) {
			return nil, "", paramListErrorf("repeated %s", VarArgSymbol)
		}
		return params, rest[0].Str, nil
	}
	return params, "", nil
}
