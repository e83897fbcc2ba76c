package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

// Shell runs the interactive command loop against one App.
type Shell struct {
	app *App
	out io.Writer
}

// New creates a shell with a fresh session writing results to out.
func New(out io.Writer) *Shell {
	return &Shell{app: NewApp(), out: out}
}

// App exposes the session state, mainly for tests.
func (s *Shell) App() *App { return s.app }

// Run reads commands from in until EOF or the quit command. Empty lines
// and lines starting with '#' are skipped. Command errors are printed and
// the loop continues.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		name := strings.ToLower(args[0])
		if name == "quit" || name == "exit" {
			return nil
		}
		if err := s.dispatch(name, args[1:]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}
