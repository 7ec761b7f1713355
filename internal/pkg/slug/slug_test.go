package slug

import (
	"errors"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Organic Farming", "organic-farming"},
		{"Organic Farming & Co.", "organic-farming-co"},
		{"  Hello   World  ", "hello-world"},
		{"UPPER-case", "upper-case"},
		{"123 Numbers 456", "123-numbers-456"},
		{"---", ""},
		{"", ""},
		{"émission spéciale", "mission-sp-ciale"},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEnsureUniqueFree(t *testing.T) {
	got, err := EnsureUnique("organic-farming", "", func(string, string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "organic-farming" {
		t.Errorf("got %q, want base unchanged", got)
	}
}

func TestEnsureUniqueProbes(t *testing.T) {
	taken := map[string]bool{"post": true, "post-2": true}
	got, err := EnsureUnique("post", "", func(candidate, _ string) (bool, error) {
		return taken[candidate], nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "post-3" {
		t.Errorf("got %q, want post-3", got)
	}
}

func TestEnsureUniqueEmptyBase(t *testing.T) {
	got, err := EnsureUnique("", "", func(string, string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "untitled" {
		t.Errorf("got %q, want untitled", got)
	}
}

func TestEnsureUniquePropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := EnsureUnique("x", "", func(string, string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want wrapped db error", err)
	}
}
