package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devconnect/api/internal/application/service"
	"github.com/devconnect/api/internal/config"
	"github.com/devconnect/api/pkg/apperror"
	"github.com/devconnect/api/pkg/logger"
)

const (
	defaultBaseURL = "https://api.github.com"
	pageSize       = 5
	cacheTTL       = 10 * time.Minute
)

type githubAdapter struct {
	client  *http.Client
	cache   *redis.Client
	baseURL string
	token   string
	log     logger.Logger
}

// NewGithubAdapter returns a RepoLister backed by the GitHub REST API with a
// Redis cache in front. Listings are capped at the five most recent repos,
// sorted by creation, as the old API did.
func NewGithubAdapter(cfg config.Config, cache *redis.Client, log logger.Logger) service.RepoLister {
	return &githubAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		baseURL: defaultBaseURL,
		token:   cfg.Github.Token,
		log:     log,
	}
}

func cacheKey(username string) string {
	return "github:repos:" + username
}

func (a *githubAdapter) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	if cached, err := a.cache.Get(ctx, cacheKey(username)).Bytes(); err == nil {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc",
		a.baseURL, url.PathEscape(username), pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build github request", err)
	}
	req.Header.Set("User-Agent", "devconnect-api")
	if a.token != "" {
		req.Header.Set("Authorization", "token "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstream("github request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewUpstream(fmt.Sprintf("github answered %d for '%s'", resp.StatusCode, username), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewUpstream("failed to read github response", err)
	}

	if err := a.cache.Set(ctx, cacheKey(username), body, cacheTTL).Err(); err != nil {
		a.log.Warn("Failed to cache github repos", zap.String("username", username), zap.Error(err))
	}

	return body, nil
}
