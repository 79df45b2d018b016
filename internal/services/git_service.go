package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	filepathx "github.com/yargevad/filepathx"

	"gitscribe/internal/models"
	"gitscribe/internal/utils"
)

// ErrNotARepository is the reclassified form of git's "not a git
// repository" diagnostic.
var ErrNotARepository = errors.New("not a git repository")

// RepositoryLocator enumerates git repositories under workspace roots.
type RepositoryLocator interface {
	Locate(roots []string) []models.Repository
}

// DiffExtractor retrieves the staged diff for a repository path.
type DiffExtractor interface {
	StagedDiff(ctx context.Context, repoPath string) (string, error)
}

type GitService struct {
	context context.Context
}

func (g *GitService) Startup(ctx context.Context) {
	g.context = ctx
}

func NewGitService() *GitService {
	return &GitService{}
}

// IsRepository probes whether path opens as a git repository. The .git
// stat is a cheap pre-filter before go-git parses the repository layout.
func (g *GitService) IsRepository(path string) bool {
	if !utils.HasGitDir(path) {
		return false
	}
	_, err := git.PlainOpen(path)
	return err == nil
}

// ValidateRepository checks if the given path is a valid git repository
func (g *GitService) ValidateRepository(repoPath string) error {
	if repoPath == "" {
		return fmt.Errorf("repository path cannot be empty")
	}

	if _, err := git.PlainOpen(repoPath); err != nil {
		return fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
	}
	return nil
}

// Locate returns every repository found under the given roots. Each root is
// probed directly, then its subtree is searched for embedded .git markers.
// The subtree search has no depth limit; a very large tree costs time and
// file handles, it never fails the run. Errors during either probe are
// swallowed per root so one broken root cannot hide the others.
func (g *GitService) Locate(roots []string) []models.Repository {
	var repos []models.Repository
	seen := make(map[string]bool)

	for _, root := range roots {
		if !utils.DirectoryExists(root) {
			continue
		}
		rootName := filepath.Base(root)

		if g.IsRepository(root) {
			repos = append(repos, models.Repository{
				Path:        root,
				DisplayName: rootName,
				Root:        root,
			})
			seen[root] = true
		}

		markers, err := filepathx.Glob(filepath.Join(root, "**", ".git"))
		if err != nil {
			continue
		}
		for _, marker := range markers {
			repoPath := filepath.Dir(marker)
			if repoPath == root || seen[repoPath] {
				continue
			}
			if !g.IsRepository(repoPath) {
				continue
			}
			rel, relErr := filepath.Rel(root, repoPath)
			if relErr != nil {
				continue
			}
			repos = append(repos, models.Repository{
				Path:        repoPath,
				DisplayName: rootName + "/" + filepath.ToSlash(rel),
				Root:        root,
			})
			seen[repoPath] = true
		}
	}

	return repos
}

// FindByPath re-locates the live repository list and returns the entry
// matching repoPath exactly, if it still exists.
func (g *GitService) FindByPath(roots []string, repoPath string) (*models.Repository, bool) {
	for _, repo := range g.Locate(roots) {
		if repo.Path == repoPath {
			return &repo, true
		}
	}
	return nil, false
}

// StagedDiff runs `git diff --cached` for the repository and returns the
// trimmed patch text. An empty result is a valid outcome meaning nothing
// is staged. Output is buffered in memory without a ceiling, so large
// diffs are never truncated.
func (g *GitService) StagedDiff(ctx context.Context, repoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", repoPath, "diff", "--cached")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", ClassifyGitDiagnostic(strings.TrimSpace(stderr.String()), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ClassifyGitDiagnostic maps a git stderr diagnostic onto the error
// taxonomy. Substring matching on tool output is brittle against upstream
// wording changes; every caller goes through this one function so a future
// replacement with structured exit-code handling is a local change.
func ClassifyGitDiagnostic(diagnostic string, err error) error {
	if strings.Contains(diagnostic, "not a git repository") {
		return fmt.Errorf("%w: %s", ErrNotARepository, diagnostic)
	}
	if diagnostic == "" && err != nil {
		diagnostic = err.Error()
	}
	return fmt.Errorf("git diff failed: %s", diagnostic)
}
