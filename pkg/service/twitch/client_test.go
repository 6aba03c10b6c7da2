package twitch_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tuser/pkg/domain/model"
	"github.com/secmon-lab/tuser/pkg/service/twitch"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func testSecrets() *model.Secrets {
	return &model.Secrets{
		SlackToken:         "slack-secret",
		TwitchClientID:     "client-id",
		TwitchClientSecret: "client-secret",
		TwitchAppToken:     "app-token",
	}
}

func buildQuery(t *testing.T, text string) *model.LookupQuery {
	t.Helper()
	query, err := model.BuildLookupQuery(text)
	gt.NoError(t, err).Required()
	return query
}

func TestLookupUsers(t *testing.T) {
	ctx := testContext()

	t.Run("Batched request with headers", func(t *testing.T) {
		var mu sync.Mutex
		var gotRequests []*http.Request
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotRequests = append(gotRequests, r.Clone(r.Context()))
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			if _, err := w.Write([]byte(`{"data":[{"type":"","id":"19571641","login":"ninja","display_name":"Ninja","broadcaster_type":"partner","description":"d","profile_image_url":"http://x/y.png","offline_image_url":"http://x/o.png"}]}`)); err != nil {
				t.Error(err)
			}
		}))
		defer srv.Close()

		client := twitch.New(twitch.WithAPIURL(srv.URL))
		users, err := client.LookupUsers(ctx, buildQuery(t, "ninja 19571641, foo"), testSecrets())
		gt.NoError(t, err).Required()

		// One upstream call regardless of identifier count
		mu.Lock()
		defer mu.Unlock()
		gt.Equal(t, 1, len(gotRequests))
		req := gotRequests[0]
		gt.Equal(t, "client-id", req.Header.Get("Client-ID"))
		gt.Equal(t, "Bearer app-token", req.Header.Get("Authorization"))
		gt.Equal(t, "id=19571641&login=ninja&login=foo", req.URL.RawQuery)

		gt.Equal(t, 1, len(users))
		gt.Equal(t, "19571641", users[0].ID)
		gt.Equal(t, "Ninja", users[0].DisplayName)
		gt.Equal(t, "http://x/y.png", users[0].ProfileImageURL)
	})

	t.Run("Empty data array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer srv.Close()

		client := twitch.New(twitch.WithAPIURL(srv.URL))
		users, err := client.LookupUsers(ctx, buildQuery(t, "nosuchuser"), testSecrets())
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, len(users))
	})

	t.Run("Non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "oops", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := twitch.New(twitch.WithAPIURL(srv.URL))
		_, err := client.LookupUsers(ctx, buildQuery(t, "ninja"), testSecrets())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUpstreamStatus))
	})

	t.Run("Redirect is an upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "http://elsewhere.example/users", http.StatusFound)
		}))
		defer srv.Close()

		client := twitch.New(twitch.WithAPIURL(srv.URL))
		_, err := client.LookupUsers(ctx, buildQuery(t, "ninja"), testSecrets())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUpstreamStatus))
	})

	t.Run("Undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := twitch.New(twitch.WithAPIURL(srv.URL))
		_, err := client.LookupUsers(ctx, buildQuery(t, "ninja"), testSecrets())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrResponseDecode))
	})

	t.Run("Unreachable endpoint", func(t *testing.T) {
		client := twitch.New(twitch.WithAPIURL("http://127.0.0.1:1/users"))
		_, err := client.LookupUsers(ctx, buildQuery(t, "ninja"), testSecrets())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryUnreachable))
	})
}
