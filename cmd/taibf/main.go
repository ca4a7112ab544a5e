package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/machines"
	"github.com/reusee/taibf/modes"
	"golang.org/x/term"
)

var (
	dump         = cmds.Switch("-dump", "print the compiled program instead of running it")
	snapshotPath = cmds.Var[string]("-snapshot", "<path>: write the machine state there after the run")
)

var stderr io.Writer = os.Stderr

func main() {
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	os.Exit(run(scope, os.Args[1:]))
}

func usage() {
	fmt.Fprintln(stderr, "usage: taibf [flags] [--] <file>")
	cmds.GlobalExecutor.Output = stderr
	cmds.PrintUsage()
}

func run(scope dscope.Scope, args []string) (code int) {
	paths, err := cmds.Execute(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		usage()
		return 2
	}
	if len(paths) != 1 {
		usage()
		return 2
	}
	path := paths[0]
	ctx := logs.WithSource(context.Background(), path)

	fail := func(err error) {
		fmt.Fprintf(stderr, "taibf: %v\n", logs.WrapSource(ctx, err))
		code = 1
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fail(err)
		return
	}

	var stdout machines.Stdout
	scope.Call(func(s machines.Stdout) {
		stdout = s
	})
	flush := func() error {
		return nil
	}
	if !isTerminal(stdout) {
		w := bufio.NewWriter(stdout)
		flush = w.Flush
		stdout = w
		scope = scope.Fork(func() machines.Stdout {
			return w
		})
	}

	scope.Call(func(
		logger logs.Logger,
		newMachine machines.NewMachine,
	) {
		m, err := newMachine(string(src))
		if err != nil {
			fail(err)
			return
		}

		if *dump {
			fmt.Fprint(stdout, m.Program.String())
			if err := flush(); err != nil {
				fail(err)
			}
			return
		}

		logger.DebugContext(ctx, "run",
			"instructions", len(m.Program),
			"tape", len(m.Tape),
		)
		runErr := m.Run()
		if err := flush(); err != nil && runErr == nil {
			runErr = fmt.Errorf("%w: %w", machines.ErrOutput, err)
		}
		if *snapshotPath != "" {
			if err := writeSnapshot(m, *snapshotPath); err != nil {
				fail(err)
			}
		}
		if runErr != nil {
			fail(runErr)
			return
		}
		logger.DebugContext(ctx, "done",
			"steps", m.Steps,
		)
	})

	return
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func writeSnapshot(m *machines.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
