package lisp

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// function's list of formal arguments.
const VarArgSymbol = "&"

// Names of the special forms installed in a root environment.
const (
	SymbolIf  = "if"
	SymbolDo  = "do"
	SymbolDef = "def!"
	SymbolLet = "let*"
	SymbolFn  = "fn*"
)
