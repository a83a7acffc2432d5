package whd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/context/ctxhttp"

	"github.com/ericpoe/ask-a-tech/config"
	"github.com/ericpoe/ask-a-tech/types"
)

const path = "/helpdesk/WebObjects/Helpdesk.woa/ra/Tickets"

// Client is the Web Help Desk REST client. It holds no state between calls.
type Client struct {
	host   string
	apikey string
	client *http.Client
}

// NewClient returns a client for the configured Web Help Desk host. A nil http.Client uses
// http.DefaultClient i.e. transport defaults and no request timeout.
func NewClient(cfg *config.WHD, client *http.Client) *Client {
	return &Client{
		host:   cfg.Host,
		apikey: cfg.APIKey,
		client: client,
	}
}

// URL returns the ticket creation endpoint, including the API key.
func (c *Client) URL() string {
	u := url.URL{
		Scheme:   "https",
		Host:     c.host,
		Path:     path,
		RawQuery: url.Values{"apiKey": []string{c.apikey}}.Encode(),
	}

	return u.String()
}

// Submit POSTs a ticket to Web Help Desk. The response body is discarded. A transport failure is
// returned as SubmitError{Network} and a non-2xx response as SubmitError{HTTP}. Each successful
// call creates a new ticket.
func (c *Client) Submit(ctx context.Context, ticket Ticket) error {
	body, err := json.Marshal(ticket)
	if err != nil {
		return types.NewError(types.SubmitError, types.Network, fmt.Errorf("error encoding ticket (%w)", err))
	}

	rq, err := http.NewRequest(http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return types.NewError(types.SubmitError, types.Network, err)
	}

	rq.Header.Set("content-type", "application/json")

	response, err := ctxhttp.Do(ctx, c.client, rq)
	if err != nil {
		return types.NewError(types.SubmitError, types.Network, redact(err, c.apikey))
	}

	defer response.Body.Close()

	io.Copy(io.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return types.NewError(types.SubmitError, types.HTTP, fmt.Errorf("%v", response.Status))
	}

	return nil
}

// redact strips the API key from url.Error messages, which include the request URL.
func redact(err error, apikey string) error {
	if apikey == "" {
		return err
	}

	if e, ok := err.(*url.Error); ok {
		return &url.Error{
			Op:  e.Op,
			URL: strings.ReplaceAll(e.URL, url.QueryEscape(apikey), "********"),
			Err: e.Err,
		}
	}

	return err
}
