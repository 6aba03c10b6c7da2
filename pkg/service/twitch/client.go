package twitch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/domain/model"
)

// DefaultAPIURL is the Helix users endpoint
const DefaultAPIURL = "https://api.twitch.tv/helix/users"

// Client implements UserDirectory over the Twitch Helix HTTP API
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithAPIURL overrides the Helix users endpoint
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = apiURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Helix users client
func New(opts ...Option) interfaces.UserDirectory {
	client := &Client{
		apiURL: DefaultAPIURL,
		// Redirects are surfaced as their own status and treated as
		// upstream errors, never followed into a success.
		httpClient: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// LookupUsers issues one batched GET to the users endpoint and decodes the
// response. Exactly status 200 counts as success; redirects are not followed
// into success either, any other status is an upstream error. There is no
// retry, one attempt per call.
func (c *Client) LookupUsers(ctx context.Context, query *model.LookupQuery, secrets *model.Secrets) ([]model.TwitchUser, error) {
	reqURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid Twitch API URL", goerr.V("url", c.apiURL))
	}
	reqURL.RawQuery = query.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build Twitch request")
	}
	req.Header.Set("Client-ID", secrets.TwitchClientID)
	req.Header.Set("Authorization", "Bearer "+secrets.TwitchAppToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryUnreachable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctxlog.From(ctx).Error("Twitch response error",
			"status", resp.StatusCode,
			"query", query,
		)
		return nil, goerr.Wrap(model.ErrUpstreamStatus, resp.Status,
			goerr.V("status", resp.StatusCode),
		)
	}

	var list model.TwitchUserList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, goerr.Wrap(model.ErrResponseDecode, err.Error())
	}

	return list.Data, nil
}
