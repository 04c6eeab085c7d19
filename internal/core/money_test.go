package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"25.5", 2550, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{".5", 50, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1e3", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -50}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	cases := []struct {
		m   Money
		out string
	}{
		{Money{Cents: 2550}, "25.5"},
		{Money{Cents: 100}, "1"},
		{Money{Cents: 1}, "0.01"},
		{Money{Cents: 0}, "0"},
	}
	for i, tc := range cases {
		b, err := json.Marshal(tc.m)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if string(b) != tc.out {
			t.Fatalf("case %d expected %s, got %s", i, tc.out, b)
		}
	}
}

func TestMoneyUnmarshalJSONLenient(t *testing.T) {
	cases := []struct {
		in  string
		out int64
	}{
		{"25.5", 2550},
		{"0.01", 1},
		{"100", 10000},
		{`"garbage"`, 0},
		{"null", 0},
		{"{}", 0},
	}
	for i, tc := range cases {
		var m Money
		if err := json.Unmarshal([]byte(tc.in), &m); err != nil {
			t.Fatalf("case %d: lenient unmarshal returned %v", i, err)
		}
		if m.Cents != tc.out {
			t.Fatalf("case %d expected %d cents, got %d", i, tc.out, m.Cents)
		}
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	orig := Money{Cents: 1234567}
	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Money
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != orig {
		t.Fatalf("round trip changed %v to %v", orig, got)
	}
}
