package parse

import "testing"

func TestSuccess(t *testing.T) {
	r := Success("foo", "bar")

	if !r.OK {
		t.Error("Success is not OK")
	}
	if r.Value != "foo" {
		t.Errorf("Value = %q, want %q", r.Value, "foo")
	}
	if r.Remaining != "bar" {
		t.Errorf("Remaining = %q, want %q", r.Remaining, "bar")
	}
	if r.Expected != "" {
		t.Errorf("Expected = %q, want empty", r.Expected)
	}
}

func TestFailure(t *testing.T) {
	r := Failure("foo", "bar")

	if r.OK {
		t.Error("Failure is OK")
	}
	if r.Expected != "foo" {
		t.Errorf("Expected = %q, want %q", r.Expected, "foo")
	}
	if r.Remaining != "bar" {
		t.Errorf("Remaining = %q, want %q", r.Remaining, "bar")
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Success("foo", " bar"), `matched "foo" leaving " bar"`},
		{Failure("foo", "bar"), `expected "foo" at "bar"`},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParserFunc(t *testing.T) {
	p := ParserFunc(func(in string) Result {
		return Success(in, "")
	})

	r := p.Parse("anything")
	if !r.OK || r.Value != "anything" {
		t.Errorf("Parse = %v, want a match of the whole input", r)
	}
}
