package envutil

import (
	"reflect"
	"testing"
	"time"
)

func TestList(t *testing.T) {
	t.Setenv("ORIGINS_TEST", " http://a.test/ , ,http://b.test")
	got := List("ORIGINS_TEST", nil)
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("List: got=%v want=%v", got, want)
	}
	if got := List("ORIGINS_TEST_UNSET", []string{"x"}); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("List default: got=%v", got)
	}
}

func TestIntAndMillis(t *testing.T) {
	t.Setenv("INT_TEST", "42")
	t.Setenv("BAD_INT_TEST", "nope")
	if got := Int("INT_TEST", 1); got != 42 {
		t.Fatalf("Int: got=%d", got)
	}
	if got := Int("BAD_INT_TEST", 1); got != 1 {
		t.Fatalf("Int fallback: got=%d", got)
	}
	t.Setenv("DELAY_TEST", "0")
	if got := Millis("DELAY_TEST", time.Second); got != 0 {
		t.Fatalf("Millis zero: got=%v", got)
	}
	if got := Millis("DELAY_TEST_UNSET", 600*time.Millisecond); got != 600*time.Millisecond {
		t.Fatalf("Millis default: got=%v", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("BOOL_TEST", "on")
	if !Bool("BOOL_TEST", false) {
		t.Fatalf("expected true")
	}
	if Bool("BOOL_TEST_UNSET", false) {
		t.Fatalf("expected default false")
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("FLOAT_TEST", "0.25")
	t.Setenv("BAD_FLOAT_TEST", "x")
	if got := Float("FLOAT_TEST", 1); got != 0.25 {
		t.Fatalf("Float: got=%v", got)
	}
	if got := Float("BAD_FLOAT_TEST", 0.1); got != 0.1 {
		t.Fatalf("Float fallback: got=%v", got)
	}
}
