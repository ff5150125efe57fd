package db

import (
	"math"
	"testing"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantKind Kind
		wantAny  any
	}{
		{name: "int", value: 5, wantKind: KindInt, wantAny: int64(5)},
		{name: "int8", value: int8(-3), wantKind: KindInt, wantAny: int64(-3)},
		{name: "int64", value: int64(1 << 40), wantKind: KindInt, wantAny: int64(1 << 40)},
		{name: "uint32", value: uint32(7), wantKind: KindInt, wantAny: int64(7)},
		{name: "uint64 in range", value: uint64(9), wantKind: KindInt, wantAny: int64(9)},
		{name: "uint64 above int64", value: uint64(math.MaxUint64), wantKind: KindText, wantAny: "18446744073709551615"},
		{name: "bool true", value: true, wantKind: KindBool, wantAny: true},
		{name: "bool false", value: false, wantKind: KindBool, wantAny: false},
		{name: "string", value: "Ada", wantKind: KindText, wantAny: "Ada"},
		{name: "empty string", value: "", wantKind: KindText, wantAny: ""},
		{name: "numeric string stays text", value: "42", wantKind: KindText, wantAny: "42"},
		{name: "nil", value: nil, wantKind: KindNull, wantAny: nil},
		{name: "float falls back to null", value: 3.14, wantKind: KindNull, wantAny: nil},
		{name: "slice falls back to null", value: []string{"a"}, wantKind: KindNull, wantAny: nil},
		{name: "explicit value keeps its tag", value: Text("5"), wantKind: KindText, wantAny: "5"},
		{name: "explicit null", value: Null(), wantKind: KindNull, wantAny: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.value)
			if got.Kind() != tt.wantKind {
				t.Errorf("Infer(%v) kind = %s, want %s", tt.value, got.Kind(), tt.wantKind)
			}
			if got.Any() != tt.wantAny {
				t.Errorf("Infer(%v) value = %#v, want %#v", tt.value, got.Any(), tt.wantAny)
			}
		})
	}
}

func TestBind(t *testing.T) {
	params := map[string]any{
		"name":   "Ada",
		"id":     5,
		"active": true,
		"note":   nil,
	}

	bound := Bind(params)
	if len(bound) != len(params) {
		t.Fatalf("Bind() returned %d parameters, want %d", len(bound), len(params))
	}

	want := []struct {
		placeholder string
		kind        Kind
	}{
		{":active", KindBool},
		{":id", KindInt},
		{":name", KindText},
		{":note", KindNull},
	}
	for i, w := range want {
		if bound[i].Placeholder != w.placeholder {
			t.Errorf("Bind()[%d].Placeholder = %s, want %s", i, bound[i].Placeholder, w.placeholder)
		}
		if bound[i].Kind() != w.kind {
			t.Errorf("Bind()[%d].Kind() = %s, want %s", i, bound[i].Kind(), w.kind)
		}
	}

	if bound[2].Name() != "name" {
		t.Errorf("Name() = %s, want name", bound[2].Name())
	}
}

func TestBind_Empty(t *testing.T) {
	if got := Bind(nil); len(got) != 0 {
		t.Errorf("Bind(nil) = %v, want empty", got)
	}
	if got := Bind(map[string]any{}); len(got) != 0 {
		t.Errorf("Bind({}) = %v, want empty", got)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Int(-12), "-12"},
		{Bool(true), "true"},
		{Text("x"), "x"},
		{Null(), "NULL"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
