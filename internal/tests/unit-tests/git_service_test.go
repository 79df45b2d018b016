package unit_tests

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"

	"gitscribe/internal/services"
)

func initRepo(t *testing.T, path string) *git.Repository {
	t.Helper()
	err := os.MkdirAll(path, 0755)
	assert.NoError(t, err)
	repo, err := git.PlainInit(path, false)
	assert.NoError(t, err)
	return repo
}

func TestGitService_Locate_RootIsRepository(t *testing.T) {
	root := t.TempDir()
	initRepo(t, root)

	gs := services.NewGitService()
	repos := gs.Locate([]string{root})

	assert.Len(t, repos, 1)
	assert.Equal(t, root, repos[0].Path)
	assert.Equal(t, filepath.Base(root), repos[0].DisplayName)
}

func TestGitService_Locate_NestedRepositories(t *testing.T) {
	root := t.TempDir()
	initRepo(t, filepath.Join(root, "api"))
	initRepo(t, filepath.Join(root, "tools", "cli"))
	err := os.MkdirAll(filepath.Join(root, "docs"), 0755)
	assert.NoError(t, err)

	gs := services.NewGitService()
	repos := gs.Locate([]string{root})

	assert.Len(t, repos, 2)
	rootName := filepath.Base(root)
	names := []string{repos[0].DisplayName, repos[1].DisplayName}
	assert.Contains(t, names, rootName+"/api")
	assert.Contains(t, names, rootName+"/tools/cli")
}

func TestGitService_Locate_EmptyRootFindsNothing(t *testing.T) {
	root := t.TempDir()

	gs := services.NewGitService()
	repos := gs.Locate([]string{root})

	assert.Empty(t, repos)
}

func TestGitService_Locate_MissingRootIsSwallowed(t *testing.T) {
	good := t.TempDir()
	initRepo(t, good)

	gs := services.NewGitService()
	repos := gs.Locate([]string{"/does/not/exist", good})

	assert.Len(t, repos, 1)
	assert.Equal(t, good, repos[0].Path)
}

func TestGitService_FindByPath(t *testing.T) {
	root := t.TempDir()
	repoPath := filepath.Join(root, "api")
	initRepo(t, repoPath)

	gs := services.NewGitService()

	found, ok := gs.FindByPath([]string{root}, repoPath)
	assert.True(t, ok)
	assert.Equal(t, repoPath, found.Path)

	_, ok = gs.FindByPath([]string{root}, filepath.Join(root, "gone"))
	assert.False(t, ok)
}

func TestGitService_ValidateRepository(t *testing.T) {
	root := t.TempDir()
	initRepo(t, root)

	gs := services.NewGitService()
	assert.NoError(t, gs.ValidateRepository(root))

	err := gs.ValidateRepository(t.TempDir())
	assert.ErrorIs(t, err, services.ErrNotARepository)

	err = gs.ValidateRepository("")
	assert.Error(t, err)
}

func TestGitService_StagedDiff(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	root := t.TempDir()
	repo := initRepo(t, root)

	err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("staged content\n"), 0644)
	assert.NoError(t, err)

	gs := services.NewGitService()
	ctx := context.Background()

	// Nothing staged yet.
	diff, err := gs.StagedDiff(ctx, root)
	assert.NoError(t, err)
	assert.Empty(t, diff)

	w, err := repo.Worktree()
	assert.NoError(t, err)
	_, err = w.Add("notes.txt")
	assert.NoError(t, err)

	diff, err = gs.StagedDiff(ctx, root)
	assert.NoError(t, err)
	assert.Contains(t, diff, "diff --git")
	assert.Contains(t, diff, "staged content")
}

func TestGitService_StagedDiff_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	gs := services.NewGitService()
	_, err := gs.StagedDiff(context.Background(), t.TempDir())

	assert.ErrorIs(t, err, services.ErrNotARepository)
}

func TestClassifyGitDiagnostic(t *testing.T) {
	err := services.ClassifyGitDiagnostic(
		"fatal: not a git repository (or any of the parent directories): .git",
		errors.New("exit status 128"))
	assert.ErrorIs(t, err, services.ErrNotARepository)

	err = services.ClassifyGitDiagnostic("fatal: bad revision 'HEAD'", errors.New("exit status 128"))
	assert.False(t, errors.Is(err, services.ErrNotARepository))
	assert.Contains(t, err.Error(), "git diff failed")

	err = services.ClassifyGitDiagnostic("", errors.New("signal: killed"))
	assert.Contains(t, err.Error(), "signal: killed")
}
