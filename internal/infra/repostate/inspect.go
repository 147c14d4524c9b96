// Package repostate inspects the git working tree around the project.
// It is used as a preflight before production uploads; a project that is
// not under git at all is fine and reported as not found.
package repostate

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/pyframe/shipit/internal/domain"
)

// Client implements domain.RepoInspector using go-git.
type Client struct{}

// NewClient creates a new repository inspector.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.RepoInspector.
var _ domain.RepoInspector = (*Client)(nil)

// Inspect opens the repository containing dir and reports its branch and
// whether the working tree has uncommitted changes.
func (c *Client) Inspect(dir string) (domain.RepoState, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return domain.RepoState{}, nil
		}
		return domain.RepoState{}, fmt.Errorf("open repository: %w", err)
	}

	state := domain.RepoState{Found: true}

	// An unborn HEAD (fresh init, no commits) has no branch to report.
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		state.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return state, nil
		}
		return state, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return state, fmt.Errorf("read worktree status: %w", err)
	}
	state.Dirty = !status.IsClean()

	return state, nil
}
