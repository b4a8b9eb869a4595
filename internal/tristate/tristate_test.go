package tristate

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBool_Value(t *testing.T) {
	tests := []struct {
		in     Bool
		want   bool
		wantOK bool
	}{
		{Unset, false, false},
		{True, true, true},
		{False, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := tt.in.Value()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Value() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
			if tt.in.Defined() != tt.wantOK {
				t.Errorf("Defined() = %v, want %v", tt.in.Defined(), tt.wantOK)
			}
		})
	}
}

func TestBool_ZeroValueIsUnset(t *testing.T) {
	var b Bool
	if b != Unset {
		t.Errorf("zero value = %v, want unset", b)
	}

	record := map[string]Bool{}
	if record["missing"] != Unset {
		t.Error("missing map key should read as Unset")
	}
}

func TestBool_Not(t *testing.T) {
	if True.Not() != False || False.Not() != True || Unset.Not() != Unset {
		t.Error("Not() should flip defined values and keep Unset")
	}
}

func TestBool_PtrRoundTrip(t *testing.T) {
	for _, b := range []Bool{Unset, True, False} {
		if got := FromPtr(b.Ptr()); got != b {
			t.Errorf("FromPtr(%v.Ptr()) = %v", b, got)
		}
	}
}

func TestBool_JSON(t *testing.T) {
	in := map[string]Bool{"a": True, "b": False, "c": Unset}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"a":true,"b":false,"c":null}` {
		t.Errorf("Marshal = %s", data)
	}

	var out map[string]Bool
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out["a"] != True || out["b"] != False || out["c"] != Unset {
		t.Errorf("Unmarshal = %v", out)
	}

	var bad Bool
	if err := json.Unmarshal([]byte(`"yes"`), &bad); err == nil {
		t.Error("expected error for non-boolean JSON")
	}
}

func TestBool_YAML(t *testing.T) {
	src := "a: true\nb: false\nc: null\nd:\n"
	var out map[string]Bool
	if err := yaml.Unmarshal([]byte(src), &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := map[string]Bool{"a": True, "b": False, "c": Unset, "d": Unset}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("out[%q] = %v, want %v", k, out[k], v)
		}
	}

	var bad map[string]Bool
	if err := yaml.Unmarshal([]byte("a: maybe\n"), &bad); err == nil {
		t.Error("expected error for non-boolean YAML")
	}
}
