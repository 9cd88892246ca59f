package observability

import (
	"context"
	"reflect"
	"testing"

	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

func TestParseHeaders(t *testing.T) {
	cases := []struct {
		raw  string
		want map[string]string
	}{
		{"", nil},
		{"  ", nil},
		{"a=1", map[string]string{"a": "1"}},
		{" a = 1 , b=2=3,broken,=x,y=", map[string]string{"a": "1", "b": "2=3"}},
	}
	for _, tc := range cases {
		got := ParseHeaders(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseHeaders(%q): got=%v want=%v", tc.raw, got, tc.want)
		}
	}
}

func TestClampRatio(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1} {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v): got=%v want=%v", in, got, want)
		}
	}
}

func TestInitOTelDisabled(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.Nop(), OtelConfig{})
	if shutdown == nil {
		t.Fatalf("expected non-nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
