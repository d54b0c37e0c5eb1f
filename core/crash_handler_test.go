package core

import (
	"sync/atomic"
	"testing"
)

type finiCounter struct {
	calls atomic.Int32
}

func (f *finiCounter) Fini() { f.calls.Add(1) }

func TestHandleCrashRestoresTerminal(t *testing.T) {
	var exitCode int
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = osExit }()

	term := &finiCounter{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	if term.calls.Load() != 1 {
		t.Errorf("Expected Fini to be called once, got %d", term.calls.Load())
	}
	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}

	// Terminal is released after the first crash
	HandleCrash("again")
	if term.calls.Load() != 1 {
		t.Errorf("Expected no second Fini, got %d calls", term.calls.Load())
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	called := false
	exitFn = func(int) { called = true }
	defer func() { exitFn = osExit }()

	HandleCrash(nil)

	if called {
		t.Error("Expected nil panic value to be ignored")
	}
}
