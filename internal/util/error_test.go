package util

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorLoggerHierarchy(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() || e.Errors() != nil {
		t.Fatal("fresh logger reports errors")
	}

	e.Push("country")
	e.Push("state 4")
	e.ErrorString("heading %d out of range", 40)
	e.Pop()
	if d := e.CurrentDepth(); d != 1 {
		t.Errorf("depth = %d, want 1", d)
	}
	e.Error(errors.New("entry point 30 out of bounds"))
	e.Pop()
	e.ErrorString("top level")

	want := []string{
		"country / state 4: heading 40 out of range",
		"country: entry point 30 out of bounds",
		"top level",
	}
	if got := e.String(); got != strings.Join(want, "\n") {
		t.Errorf("String() =\n%s", got)
	}
	if !e.HaveErrors() {
		t.Error("HaveErrors should be true")
	}
	if err := e.Errors(); err == nil || !strings.Contains(err.Error(), "heading 40") {
		t.Errorf("Errors() = %v", err)
	}
}

func TestErrorLoggerNilDepth(t *testing.T) {
	var e *ErrorLogger
	if e.CurrentDepth() != 0 {
		t.Error("nil logger depth should be 0")
	}
}
