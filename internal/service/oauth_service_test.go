package service

import (
	"testing"
)

func TestOAuthGenerateState(t *testing.T) {
	oauth := NewOAuthService(OAuthServiceConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/auth/callback",
	})

	first := oauth.GenerateState()
	second := oauth.GenerateState()

	if len(first) != 32 {
		t.Fatalf("Expected a 32 character state, got %d characters", len(first))
	}
	if first == second {
		t.Fatalf("Expected states to be unique, got %s twice", first)
	}
}

func TestOAuthParseIDTokenRejectsMalformedTokens(t *testing.T) {
	oauth := NewOAuthService(OAuthServiceConfig{})

	_, err := oauth.ParseIDToken("not-a-token")
	if err == nil {
		t.Fatalf("Expected an error for a token without segments")
	}

	_, err = oauth.ParseIDToken("aaa.!!!.ccc")
	if err == nil {
		t.Fatalf("Expected an error for a token with an undecodable payload")
	}
}
