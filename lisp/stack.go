package lisp

import "fmt"

// CallStack is a function call stack shared by every frame of a root
// environment.
type CallStack struct {
	Frames []CallFrame

	// MaxHeight limits the number of nested function applications.  A
	// MaxHeight of zero means the height is unlimited and deep recursion is
	// bounded only by the goroutine stack.
	MaxHeight int
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	Name    string
	Special bool // the frame belongs to a special form
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	return len(s.Frames)
}

// Push pushes a new stack frame onto s.  Push returns an error, and leaves s
// unchanged, if the push would exceed s.MaxHeight.
func (s *CallStack) Push(f CallFrame) error {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return &RuntimeError{
			Kind: KindStackOverflow,
			Msg:  fmt.Sprintf("height %d calling %s", s.MaxHeight, f.Name),
		}
	}
	s.Frames = append(s.Frames, f)
	return nil
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}
