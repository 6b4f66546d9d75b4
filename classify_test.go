package main

import "testing"

func TestIsIndividualChannel(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"個人_田中", true},
		{"個人_山田太郎", true},
		{"個人_t-suzuki", true},
		{"個人_", false},
		{"個人", false},
		{"general", false},
		{"", false},
		{"チーム_営業", false},
		{"x個人_田中", false},
	}
	for _, c := range cases {
		if got := IsIndividualChannel(c.name); got != c.want {
			t.Fatalf("IsIndividualChannel(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestExtractPersonName(t *testing.T) {
	cases := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"個人_田中", "田中", true},
		{"個人_鈴木", "鈴木", true},
		{"個人_john.smith", "john.smith", true},
		{"個人_", "", false},
		{"general", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ExtractPersonName(c.name)
		if ok != c.wantOK || got != c.want {
			t.Fatalf("ExtractPersonName(%q) = (%q, %v), want (%q, %v)", c.name, got, ok, c.want, c.wantOK)
		}
	}
}
