package service

import (
	"context"
	"encoding/json"
)

// RepoLister fetches the public repository listing for a GitHub username.
// The body is passed through to clients untouched.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}
