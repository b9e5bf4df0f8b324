package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nsalesky/mal/lisp"
	"github.com/nsalesky/mal/parser/rdparser"
)

// DefaultPrompt is used when Config.Prompt is empty.
const DefaultPrompt = "user> "

// Config controls an interactive session.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history-file"`
}

func (c *Config) prompt() string {
	if c.Prompt == "" {
		return DefaultPrompt
	}
	return c.Prompt
}

// LineReader reads lines of input from a terminal.  *readline.Instance
// implements LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Run runs an interactive session on the terminal, evaluating input in env
// until EOF.
func Run(env *lisp.Env, cfg *Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.prompt(),
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	return Loop(env, rl, cfg.prompt())
}

// Loop reads input from rl and evaluates it in env.  Results are written to
// the runtime's stdout and errors to its stderr.  Input which ends inside an
// open form is buffered and the next line is read with a continuation prompt.
// An interrupt discards buffered input.  Loop returns nil when rl reaches
// EOF.
func Loop(env *lisp.Env, rl LineReader, prompt string) error {
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		buf = append(buf, line)
		text := strings.Join(buf, "\n")
		if strings.TrimSpace(text) == "" {
			buf = nil
			continue
		}
		out, err := lisp.EvaluateProgram(text, env)
		if errors.Is(err, rdparser.ErrIncomplete) {
			rl.SetPrompt(contPrompt)
			continue
		}
		buf = nil
		rl.SetPrompt(prompt)
		if err != nil {
			fmt.Fprintf(env.Runtime.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Fprint(env.Runtime.Stdout, out)
	}
}
