package forge

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for the GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain.
	GitHubDomain = "github.com"
	// requestTimeout bounds a single API call.
	requestTimeout = 10 * time.Second
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance, authenticated when GITHUB_TOKEN is set.
func NewGitHub() *GitHub {
	var client *github.Client
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{client: client}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// SupportsHost reports whether the forge can answer for the given host.
func (g *GitHub) SupportsHost(host string) bool {
	return host == GitHubDomain
}

// DefaultBranch fetches the repository's default branch from the GitHub API.
func (g *GitHub) DefaultBranch(owner, name string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo, _, err := g.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return "", fmt.Errorf("failed to fetch repository %s/%s from GitHub: %w", owner, name, err)
	}

	branch := repo.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("GitHub reported no default branch for %s/%s", owner, name)
	}
	return branch, nil
}
