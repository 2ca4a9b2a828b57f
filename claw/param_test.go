//nolint:testpackage // using package name 'claw' to access unexported helpers for testing
package claw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScalarRead(t *testing.T) {
	name := NewScalar[string]("n", "name", "First name")
	if name.SetByUser() {
		t.Error("fresh parameter should not be set")
	}
	if err := name.Read([]string{"Ada"}); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if v, ok := name.Value(); !ok || v != "Ada" {
		t.Errorf("Value() = %q, %v", v, ok)
	}
	if !name.SetByUser() {
		t.Error("SetByUser should be true after successful Read")
	}
}

func TestScalarLastOccurrenceWins(t *testing.T) {
	tag := NewScalar[string]("", "tag", "Tag")
	if err := tag.Read([]string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := tag.Read([]string{"b"}); err != nil {
		t.Fatal(err)
	}
	if v, _ := tag.Value(); v != "b" {
		t.Errorf("expected last occurrence to win, got %q", v)
	}
}

func TestScalarMissingValue(t *testing.T) {
	port := NewScalar[int]("p", "port", "Port")
	err := port.Read(nil)
	if err == nil {
		t.Fatal("expected error for empty token list")
	}
	parseErr := &ParseError{}
	if !errors.As(err, &parseErr) || parseErr.Type != ErrorTypeMissingValue {
		t.Errorf("expected missing_value ParseError, got %v", err)
	}
	if port.SetByUser() {
		t.Error("SetByUser must stay false after a failed Read")
	}
}

func TestScalarConversionFailure(t *testing.T) {
	port := NewScalar[int]("p", "port", "Port")
	err := port.Read([]string{"eighty"})
	if err == nil {
		t.Fatal("expected conversion error")
	}
	parseErr := &ParseError{}
	if !errors.As(err, &parseErr) || parseErr.Type != ErrorTypeInvalidValue {
		t.Fatalf("expected invalid_value ParseError, got %v", err)
	}
	convErr := &ConversionError{}
	if !errors.As(err, &convErr) {
		t.Error("ParseError should wrap the ConversionError")
	}
}

func TestScalarValueOr(t *testing.T) {
	threads := NewScalar[uint]("t", "threads", "Worker count")
	if got := threads.ValueOr(4); got != 4 {
		t.Errorf("ValueOr on unset = %d, want 4", got)
	}
	if err := threads.Read([]string{"16"}); err != nil {
		t.Fatal(err)
	}
	if got := threads.ValueOr(4); got != 16 {
		t.Errorf("ValueOr on set = %d, want 16", got)
	}
}

func TestFixedList(t *testing.T) {
	res := NewFixedList[int]("r", "resolution", "Width and height", 2)
	if res.MinArgs() != 2 || res.MaxArgs() != 2 {
		t.Errorf("arity = (%d,%d), want (2,2)", res.MinArgs(), res.MaxArgs())
	}
	if VariableLength(res) {
		t.Error("fixed list must not be variable length")
	}
	if err := res.Read([]string{"800", "600"}); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if diff := cmp.Diff([]int{800, 600}, res.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if res.At(1) != 600 {
		t.Errorf("At(1) = %d", res.At(1))
	}
}

func TestBoundedList(t *testing.T) {
	dims := NewBoundedList[int]("d", "dims", "Dimensions", 1, 3)
	if !VariableLength(dims) {
		t.Error("bounded list with min != max must be variable length")
	}
	if err := dims.Read([]string{"1", "2"}); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if dims.Len() != 2 {
		t.Errorf("Len() = %d", dims.Len())
	}

	// Below min fails and leaves SetByUser from the earlier success alone.
	if err := dims.Read(nil); err == nil {
		t.Error("expected error for fewer tokens than min")
	}
}

func TestSwitch(t *testing.T) {
	verbose := NewSwitch("v", "verbose", "Verbose output")
	if verbose.MinArgs() != 0 || verbose.MaxArgs() != 0 {
		t.Errorf("switch arity = (%d,%d)", verbose.MinArgs(), verbose.MaxArgs())
	}
	if verbose.Enabled() {
		t.Error("fresh switch should be off")
	}
	if err := verbose.Read(nil); err != nil {
		t.Fatal(err)
	}
	if !verbose.Enabled() || !verbose.SetByUser() {
		t.Error("switch should be on and set after Read")
	}
}

func TestCounterAccumulates(t *testing.T) {
	level := NewCounter("d", "debug", "Debug level")
	for i := 0; i < 3; i++ {
		if err := level.Read(nil); err != nil {
			t.Fatal(err)
		}
	}
	// Counters accumulate per occurrence, unlike value-bearing flags.
	if level.Count() != 3 {
		t.Errorf("Count() = %d, want 3", level.Count())
	}
}

func TestPositionalList(t *testing.T) {
	files := NewPositionalList[string]("input files", 0, Unbounded)
	if err := files.Read([]string{"a.txt", "b.txt"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a.txt", "b.txt"}, files.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestRepresentationName(t *testing.T) {
	cases := []struct {
		param Parameter
		want  string
	}{
		{NewScalar[string]("n", "name", "First name"), "--name"},
		{NewScalar[string]("n", "", "First name"), "-n"},
		{NewScalar[string]("", "name", "First name"), "--name"},
		{NewScalar[string]("ns", "", "Short-only multi-char"), "-ns"},
		{NewPositionalList[string]("files", 0, Unbounded), "files"},
	}
	for _, tc := range cases {
		if got := representationName(tc.param); got != tc.want {
			t.Errorf("representationName = %q, want %q", got, tc.want)
		}
	}
}
