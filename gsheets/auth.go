package gsheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// authorize returns an HTTP client authorised for the Google Sheets API. Service account credentials
// are used as is, OAuth2 client credentials need the tokens file created by Authorise.
func authorize(ctx context.Context, credentials, tokens string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	var kind struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(b, &kind); err != nil {
		return nil, fmt.Errorf("invalid credentials file %v (%w)", credentials, err)
	}

	if kind.Type == "service_account" {
		config, err := google.JWTConfigFromJSON(b, SHEETS)
		if err != nil {
			return nil, err
		}

		return config.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, SHEETS)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		return nil, fmt.Errorf("missing or invalid tokens file %v (%w) - use the 'authorise' command to authorise access", tokens, err)
	}

	return config.Client(ctx, token), nil
}

// Authorise runs the OAuth2 installed application flow: it prints the consent URL, reads the
// authorization code and saves the resulting tokens for unattended use.
func Authorise(ctx context.Context, credentials, tokens string, in io.Reader, out io.Writer) error {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, SHEETS)
	if err != nil {
		return err
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Go to the following link in your browser then type the authorization code:\n\n  %v\n\n", authURL)
	fmt.Fprintf(out, "  Authorization code: ")

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	if err := saveToken(tokens, token); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n  Saved authorization tokens to %s\n\n", tokens)

	return nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
