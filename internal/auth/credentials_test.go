package auth

import (
	"encoding/base64"
	"errors"
	"testing"
)

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func TestParseBasic(t *testing.T) {
	email, password, err := ParseBasic(basicHeader("a@b.com", "pw1"))
	if err != nil {
		t.Fatalf("ParseBasic: %v", err)
	}
	if email != "a@b.com" || password != "pw1" {
		t.Fatalf("unexpected credentials: %q %q", email, password)
	}
}

func TestParseBasicSchemeCaseInsensitive(t *testing.T) {
	header := "bAsIc " + base64.StdEncoding.EncodeToString([]byte("a@b.com:pw1"))
	if _, _, err := ParseBasic(header); err != nil {
		t.Fatalf("expected case-insensitive scheme match, got %v", err)
	}
}

func TestParseBasicSplitsOnFirstColon(t *testing.T) {
	header := "Basic " + base64.StdEncoding.EncodeToString([]byte("a@b.com:pw:with:colons"))
	_, password, err := ParseBasic(header)
	if err != nil {
		t.Fatalf("ParseBasic: %v", err)
	}
	if password != "pw:with:colons" {
		t.Fatalf("unexpected password: %q", password)
	}
}

func TestParseBasicFailures(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"empty", "", ErrMalformedCredential},
		{"one part", "Basic", ErrMalformedCredential},
		{"three parts", "Basic a b", ErrMalformedCredential},
		{"bad base64", "Basic bad", ErrMalformedCredential},
		{"no colon", "Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")), ErrMalformedCredential},
		{"bearer scheme", "Bearer sometoken", ErrWrongScheme},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ParseBasic(tc.header); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseBearer(t *testing.T) {
	token, err := ParseBearer("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ParseBearer: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", token)
	}

	if _, err := ParseBearer("bearer abc"); err != nil {
		t.Fatalf("expected case-insensitive scheme match, got %v", err)
	}
}

func TestParseBearerFailures(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"empty", "", ErrMalformedCredential},
		{"one part", "Bearer", ErrMalformedCredential},
		{"three parts", "Bearer a b", ErrMalformedCredential},
		{"basic scheme", "Basic abc", ErrWrongScheme},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBearer(tc.header); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
