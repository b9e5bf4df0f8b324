package repl

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/nsalesky/mal/lisptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	line string
	err  error
}

type fakeReader struct {
	inputs  []input
	prompts []string
}

func (r *fakeReader) Readline() (string, error) {
	if len(r.inputs) == 0 {
		return "", io.EOF
	}
	in := r.inputs[0]
	r.inputs = r.inputs[1:]
	return in.line, in.err
}

func (r *fakeReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func lines(text ...string) []input {
	inputs := make([]input, len(text))
	for i := range text {
		inputs[i] = input{line: text[i]}
	}
	return inputs
}

func TestLoop(t *testing.T) {
	var out bytes.Buffer
	env, err := lisptest.NewEnv(&out)
	require.NoError(t, err)
	var stderr bytes.Buffer
	env.Runtime.Stderr = &stderr

	rl := &fakeReader{inputs: lines(
		"(def! x 3)",
		"",
		"(+ x",
		"  4)",
		"(undefined)",
		"(prn \"hi\") x",
	)}
	err = Loop(env, rl, DefaultPrompt)
	require.NoError(t, err)
	assert.Equal(t, "3\n7\n\"hi\"\nnil\n3\n", out.String())
	assert.Equal(t, "error: unbound symbol: undefined\n", stderr.String())
	assert.Equal(t, []string{
		DefaultPrompt,
		"      ",
		DefaultPrompt,
		DefaultPrompt,
		DefaultPrompt,
	}, rl.prompts)
}

func TestLoopInterrupt(t *testing.T) {
	var out bytes.Buffer
	env, err := lisptest.NewEnv(&out)
	require.NoError(t, err)

	rl := &fakeReader{inputs: []input{
		{line: "(prn 1"},
		{err: readline.ErrInterrupt},
		{line: "(+ 1 1)"},
	}}
	err = Loop(env, rl, "> ")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())
}

func TestLoopReadError(t *testing.T) {
	env, err := lisptest.NewEnv(io.Discard)
	require.NoError(t, err)
	readErr := errors.New("terminal closed")
	rl := &fakeReader{inputs: []input{{err: readErr}}}
	err = Loop(env, rl, "> ")
	assert.Equal(t, readErr, err)
}

func TestConfigPrompt(t *testing.T) {
	assert.Equal(t, DefaultPrompt, (&Config{}).prompt())
	assert.Equal(t, "> ", (&Config{Prompt: "> "}).prompt())
}
