package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/nsalesky/mal/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env, err := newEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = runSources(env, sources, runPrint, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

type runSource struct {
	Name string
	Text string
}

func runReadSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSource{Name: fmt.Sprintf("arg%d", i+1), Text: args[i]}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("run: %w", err)
		}
		sources[i] = runSource{Name: path, Text: string(b)}
	}
	return sources, nil
}

// runSources evaluates each source in env, stopping at the first error.  When
// print is true the value of every top-level expression is written to w.
func runSources(env *lisp.Env, sources []runSource, print bool, w io.Writer) error {
	for _, src := range sources {
		if !print {
			_, err := env.LoadString(src.Name, src.Text)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}
			continue
		}
		out, err := lisp.EvaluateSource(src.Name, src.Text, env)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		_, err = io.WriteString(w, out)
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
