package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nsalesky/mal/lisp"
	"github.com/nsalesky/mal/parser"
	"github.com/nsalesky/mal/repl"
	"gopkg.in/yaml.v3"
)

// loadConfig reads the session config at path.  An empty path or an empty
// file yields the default config.
func loadConfig(path string) (*repl.Config, error) {
	cfg := &repl.Config{}
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	return decodeConfig(path, file)
}

func decodeConfig(name string, r io.Reader) (*repl.Config, error) {
	cfg := &repl.Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}
	return cfg, nil
}

func newEnv() (*lisp.Env, error) {
	return lisp.RootEnvironment(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(os.Stdout),
		lisp.WithStderr(os.Stderr),
	)
}
