package lisp

// Equal reports whether a and b are equal.  Lists and vectors compare equal
// to each other when their elements are pairwise equal.  Nil is equal only to
// nil, never to an empty list or vector.  Functions and atoms are equal only
// to themselves.
func Equal(a, b Value) bool {
	if a.IsSeq() && b.IsSeq() {
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LInt:
		return a.Int == b.Int
	case LString, LSymbol, LKeyword:
		return a.Str == b.Str
	case LBool:
		return a.Bool == b.Bool
	case LNil:
		return true
	case LHashMap:
		return mapEqual(a.Map, b.Map)
	case LFun:
		return funEqual(a.Fun, b.Fun)
	case LAtom:
		return a.Atom == b.Atom
	default:
		return false
	}
}

func funEqual(f, g FunctionBody) bool {
	switch f := f.(type) {
	case *BuiltinOnValues:
		g, ok := g.(*BuiltinOnValues)
		return ok && f.Name == g.Name
	case *BuiltinOnExpressions:
		g, ok := g.(*BuiltinOnExpressions)
		return ok && f.Name == g.Name
	case *Closure:
		g, ok := g.(*Closure)
		return ok && f == g
	default:
		return false
	}
}
