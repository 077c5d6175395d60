package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/logger"
)

// deadCache is a client pointed at nothing; every Get misses and every Set
// fails, so the adapter always falls through to the live call.
func deadCache() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newTestAdapter(serverURL string) *githubAdapter {
	return &githubAdapter{
		client:  &http.Client{Timeout: time.Second},
		cache:   deadCache(),
		baseURL: serverURL,
		token:   "test-token",
		log:     logger.NewZapLogger("development"),
	}
}

func TestListRepos_PassesBodyThrough(t *testing.T) {
	const payload = `[{"name":"repo-one"},{"name":"repo-two"}]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/janedev/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "token test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	body, err := newTestAdapter(srv.URL).ListRepos(context.Background(), "janedev")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(body))
}

func TestListRepos_UpstreamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).ListRepos(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, apperror.ErrUpstream)
}

func TestListRepos_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestAdapter(srv.URL).ListRepos(context.Background(), "janedev")
	assert.ErrorIs(t, err, apperror.ErrUpstream)
}
