package cmds

import (
	"slices"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if _, err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if _, err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	_, err := executor.Execute([]string{
		"-foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -foo") {
		t.Fatalf("got %v", err)
	}

	_, err = executor.Execute([]string{
		"a", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "a: convert x to int") {
		t.Fatalf("got %v", err)
	}

	_, err = executor.Execute([]string{
		"a",
	})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("-n", Func(func(i int) {
		n = i
	}))
	rest, err := executor.Execute([]string{"a.bf", "-n", "3", "b.bf"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatal()
	}
	if !slices.Equal(rest, []string{"a.bf", "b.bf"}) {
		t.Fatalf("got %v", rest)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if _, err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if _, err := executor.Execute([]string{"fail"}); err != errFoo {
		t.Fatalf("got %v", err)
	}
}

type fooError struct{}

func (fooError) Error() string { return "foo" }

var errFoo error = fooError{}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if _, err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	_, err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	_, err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	_, err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	_, err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestFuncSignature(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 1 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%T should panic", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestTerminator(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("-n", Func(func(i int) {
		n = i
	}))
	rest, err := executor.Execute([]string{"-n", "1", "--", "-n", "-prog.bf", "--"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("got %v", n)
	}
	if !slices.Equal(rest, []string{"-n", "-prog.bf", "--"}) {
		t.Fatalf("got %v", rest)
	}
}
