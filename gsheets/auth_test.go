package gsheets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

const installed = `{"installed":{"client_id":"12345.apps.googleusercontent.com","project_id":"ask-a-tech","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","client_secret":"shhh","redirect_uris":["http://localhost"]}}`

func TestTokensRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".google", "credentials.sheets")
	token := oauth2.Token{
		AccessToken:  "ya29.access",
		TokenType:    "Bearer",
		RefreshToken: "1//refresh",
		Expiry:       time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC),
	}

	if err := saveToken(file, &token); err != nil {
		t.Fatalf("Unexpected error saving tokens (%v)", err)
	}

	if info, err := os.Stat(file); err != nil {
		t.Fatalf("Error reading tokens file (%v)", err)
	} else if info.Mode().Perm() != 0600 {
		t.Errorf("Incorrect tokens file permissions - expected:%v, got:%v", os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := tokenFromFile(file)
	if err != nil {
		t.Fatalf("Unexpected error loading tokens (%v)", err)
	}

	if loaded.AccessToken != token.AccessToken || loaded.RefreshToken != token.RefreshToken || !loaded.Expiry.Equal(token.Expiry) {
		t.Errorf("Incorrect tokens\n   expected: %+v\n   got:      %+v", token, *loaded)
	}
}

func TestAuthorizeWithoutTokens(t *testing.T) {
	dir := t.TempDir()
	credentials := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(credentials, []byte(installed), 0600); err != nil {
		t.Fatalf("Error writing credentials (%v)", err)
	}

	_, err := authorize(context.Background(), credentials, filepath.Join(dir, "credentials.sheets"))
	if err == nil {
		t.Fatalf("Expected error authorising without tokens, got %v", err)
	}

	if !strings.Contains(err.Error(), "authorise") {
		t.Errorf("Expected error to suggest the 'authorise' command, got %v", err)
	}
}

func TestAuthorizeWithTokens(t *testing.T) {
	dir := t.TempDir()
	credentials := filepath.Join(dir, "credentials.json")
	tokens := filepath.Join(dir, "credentials.sheets")

	if err := os.WriteFile(credentials, []byte(installed), 0600); err != nil {
		t.Fatalf("Error writing credentials (%v)", err)
	}

	if err := saveToken(tokens, &oauth2.Token{AccessToken: "ya29.access", RefreshToken: "1//refresh"}); err != nil {
		t.Fatalf("Error writing tokens (%v)", err)
	}

	client, err := authorize(context.Background(), credentials, tokens)
	if err != nil {
		t.Fatalf("Unexpected error authorising (%v)", err)
	}

	if client == nil {
		t.Errorf("Expected authorised HTTP client, got %v", client)
	}
}

func TestAuthorizeWithInvalidCredentials(t *testing.T) {
	dir := t.TempDir()
	credentials := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(credentials, []byte("not json"), 0600); err != nil {
		t.Fatalf("Error writing credentials (%v)", err)
	}

	if _, err := authorize(context.Background(), credentials, ""); err == nil {
		t.Errorf("Expected error for invalid credentials file, got %v", err)
	}
}

func TestAuthoriseWithoutCode(t *testing.T) {
	dir := t.TempDir()
	credentials := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(credentials, []byte(installed), 0600); err != nil {
		t.Fatalf("Error writing credentials (%v)", err)
	}

	var out strings.Builder

	err := Authorise(context.Background(), credentials, filepath.Join(dir, "credentials.sheets"), strings.NewReader(""), &out)
	if err == nil {
		t.Fatalf("Expected error when no authorization code is entered, got %v", err)
	}

	if !strings.Contains(out.String(), "https://accounts.google.com/o/oauth2/auth") {
		t.Errorf("Expected consent URL in output, got %v", out.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "credentials.sheets")); !os.IsNotExist(err) {
		t.Errorf("Expected no tokens file to be written, got %v", err)
	}
}
