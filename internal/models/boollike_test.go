package models

import (
	"encoding/json"
	"testing"
)

func TestBoolLikeUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`""`, false},
	}
	for _, tc := range cases {
		var b BoolLike
		if err := json.Unmarshal([]byte(tc.in), &b); err != nil {
			t.Errorf("unmarshal %s: %v", tc.in, err)
			continue
		}
		if b.Bool() != tc.want {
			t.Errorf("unmarshal %s = %v, want %v", tc.in, b.Bool(), tc.want)
		}
	}
}

func TestBoolLikeUnmarshalRejectsOtherNumbers(t *testing.T) {
	for _, in := range []string{`2`, `-1`, `1.0`, `"yes"`} {
		var b BoolLike
		if err := json.Unmarshal([]byte(in), &b); err == nil {
			t.Errorf("unmarshal %s succeeded, want error", in)
		}
	}
}

func TestBoolLikeNullKeepsValue(t *testing.T) {
	b := BoolLike(true)
	if err := json.Unmarshal([]byte(`null`), &b); err != nil {
		t.Fatal(err)
	}
	if !b.Bool() {
		t.Error("null overwrote existing value")
	}
}

func TestBoolLikeMarshalsAsPlainBool(t *testing.T) {
	type payload struct {
		Status BoolLike `json:"status"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"status":"1"}`), &p); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"status":true}` {
		t.Errorf("marshal = %s, want plain bool", out)
	}
}

func TestBoolLikeScan(t *testing.T) {
	cases := []struct {
		in   interface{}
		want bool
	}{
		{nil, false},
		{true, true},
		{int64(1), true},
		{int64(0), false},
		{[]byte("1"), true},
		{[]byte("0"), false},
		{"true", true},
	}
	for _, tc := range cases {
		var b BoolLike
		if err := b.Scan(tc.in); err != nil {
			t.Errorf("scan %v: %v", tc.in, err)
			continue
		}
		if b.Bool() != tc.want {
			t.Errorf("scan %v = %v, want %v", tc.in, b.Bool(), tc.want)
		}
	}
}
