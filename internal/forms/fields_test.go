package forms

import "testing"

func TestFieldsGetTrims(t *testing.T) {
	f := Fields{"a": "  hello  ", "b": "\tworld\n"}
	if got := f.Get("a"); got != "hello" {
		t.Errorf("Get(a) = %q", got)
	}
	if got := f.Get("b"); got != "world" {
		t.Errorf("Get(b) = %q", got)
	}
	if got := f.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
}

func TestFieldsGetIntParseOrZero(t *testing.T) {
	f := Fields{"n": " 42 ", "bad": "42abc", "empty": ""}
	if got := f.GetInt("n"); got != 42 {
		t.Errorf("GetInt(n) = %d, want 42", got)
	}
	for _, id := range []string{"bad", "empty", "missing"} {
		if got := f.GetInt(id); got != 0 {
			t.Errorf("GetInt(%s) = %d, want 0", id, got)
		}
	}
}

func TestFieldsGetBool(t *testing.T) {
	f := Fields{"yes": "true", "padded": " true ", "no": "false", "odd": "TRUE"}
	if !f.GetBool("yes") || !f.GetBool("padded") {
		t.Error("literal true not recognized")
	}
	if f.GetBool("no") || f.GetBool("odd") || f.GetBool("missing") {
		t.Error("non-true value read as true")
	}
}

func TestSetIntRoundTrip(t *testing.T) {
	f := Fields{}
	f.SetInt("n", 7)
	if got := f.GetInt("n"); got != 7 {
		t.Errorf("round trip = %d, want 7", got)
	}
	f.SetBool("b", true)
	if !f.GetBool("b") {
		t.Error("bool round trip failed")
	}
}
