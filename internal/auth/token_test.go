package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	issued := Claims{Sub: "admin", JTI: "abc123", Exp: time.Now().Add(time.Hour).Unix()}

	token, err := IssueToken(testSecret, issued)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	parsed, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if parsed != issued {
		t.Errorf("parsed claims = %+v, want %+v", parsed, issued)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := IssueToken(testSecret, Claims{Sub: "admin", JTI: "abc123", Exp: time.Now().Add(time.Hour).Unix()})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	cases := map[string]string{
		"wrong signature": strings.SplitN(token, ".", 2)[0] + ".AAAA",
		"no separator":    strings.ReplaceAll(token, ".", ""),
		"empty":           "",
		"garbage":         "not.a-token",
	}
	for name, bad := range cases {
		if _, err := ParseToken(testSecret, bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: error = %v, want ErrInvalidToken", name, err)
		}
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, Claims{Sub: "admin", JTI: "abc123", Exp: time.Now().Add(time.Hour).Unix()})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := ParseToken([]byte("other-secret"), token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, Claims{Sub: "admin", JTI: "abc123", Exp: time.Now().Add(-time.Minute).Unix()})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := ParseToken(testSecret, token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("error = %v, want ErrExpiredToken", err)
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("HashToken not deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different tokens hashed equal")
	}
	if HashToken("abc") == "abc" {
		t.Error("hash equals input")
	}
}
