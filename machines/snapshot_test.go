package machines

import (
	"bytes"
	"encoding/gob"
	"errors"
	"testing"

	"github.com/reusee/taibf/compiles"
)

func TestSnapshot(t *testing.T) {
	src := "+++++[>++++++++<-]>.<++.>+."

	out1 := new(bytes.Buffer)
	m1 := New(16)
	m1.Output = out1
	if err := m1.Load(src); err != nil {
		t.Fatal(err)
	}
	for range 10 {
		if err := m1.Step(); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := m1.Snapshot(&buf); err != nil {
		t.Fatal(err)
	}

	m2 := New(1)
	out2 := new(bytes.Buffer)
	m2.Output = out2
	if err := m2.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if m2.PC != m1.PC || m2.DP != m1.DP || m2.Steps != 10 {
		t.Fatalf("got pc %d dp %d steps %d", m2.PC, m2.DP, m2.Steps)
	}
	if len(m2.Tape) != 16 || !bytes.Equal(m2.Tape, m1.Tape) {
		t.Fatalf("got %v", m2.Tape)
	}

	if err := m1.Run(); err != nil {
		t.Fatal(err)
	}
	if err := m2.Run(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out1.Bytes(), out2.Bytes()) {
		t.Fatalf("got %v and %v", out1.Bytes(), out2.Bytes())
	}
	if !bytes.Equal(out1.Bytes(), []byte{40, 2, 41}) {
		t.Fatalf("got %v", out1.Bytes())
	}
}

func TestRestoreBadInput(t *testing.T) {
	m := New(4)
	if err := m.Restore(bytes.NewReader([]byte("not gob"))); err == nil {
		t.Fatal("should error")
	}
	if len(m.Tape) != 4 {
		t.Fatal()
	}
}

func TestRestoreBadPC(t *testing.T) {
	for _, state := range []State{
		{Tape: make([]byte, 4), PC: -1},
		{Tape: make([]byte, 4), PC: 1},
		{Tape: make([]byte, 4), Program: compiles.Program{compiles.OpIncrement.With(1)}, PC: 2},
	} {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(state); err != nil {
			t.Fatal(err)
		}
		m := New(8)
		if err := m.Restore(&buf); !errors.Is(err, ErrHalted) {
			t.Fatalf("pc %d: got %v", state.PC, err)
		}
		if len(m.Tape) != 8 || m.PC != 0 {
			t.Fatal("machine should be unchanged")
		}
		if err := m.Run(); err != nil {
			t.Fatal(err)
		}
	}

	// pc at the end is a valid terminated state
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(State{
		Tape:    make([]byte, 4),
		Program: compiles.Program{compiles.OpIncrement.With(1)},
		PC:      1,
	}); err != nil {
		t.Fatal(err)
	}
	m := New(8)
	if err := m.Restore(&buf); err != nil {
		t.Fatal(err)
	}
	if !m.Done() {
		t.Fatal()
	}
}
