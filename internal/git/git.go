// Package git records journal changes when the journal lives in a git
// repository. Outside a repository every call is a no-op.
package git

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var author = object.Signature{
	Name:  "Jerd",
	Email: "jerd@local",
}

// IsRepo checks if the given path is inside a git repository
func IsRepo(path string) bool {
	_, err := FindRepoRoot(path)
	return err == nil
}

// FindRepoRoot walks up from path to the directory holding .git
func FindRepoRoot(path string) (string, error) {
	current := path
	if info, err := os.Stat(current); err == nil && !info.IsDir() {
		current = filepath.Dir(current)
	}

	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", os.ErrNotExist
		}
		current = parent
	}
}

// Commit stages paths and commits them with message. Paths may be files
// that were just deleted. Nothing happens when the paths are not in a
// repository or nothing changed. With push set, the commit is pushed to
// the default remote if one is configured.
func Commit(paths []string, message string, push bool) error {
	if len(paths) == 0 {
		return nil
	}

	repoRoot, err := FindRepoRoot(paths[0])
	if err != nil {
		// a deleted file's directory may be gone too
		repoRoot, err = FindRepoRoot(filepath.Dir(paths[0]))
		if err != nil {
			return nil
		}
	}

	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return err
	}
	w, err := repo.Worktree()
	if err != nil {
		return err
	}

	for _, p := range paths {
		if err := stage(w, repoRoot, p); err != nil {
			log.Printf("Warning: could not stage %s: %v", p, err)
		}
	}

	status, err := w.Status()
	if err != nil {
		return err
	}
	if status.IsClean() {
		return nil
	}

	sig := author
	sig.When = time.Now()
	if _, err := w.Commit(message, &git.CommitOptions{Author: &sig}); err != nil {
		return err
	}

	if !push {
		return nil
	}
	remotes, err := repo.Remotes()
	if err != nil || len(remotes) == 0 {
		return nil
	}
	err = repo.Push(&git.PushOptions{})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return err
	}
	return nil
}

// stage adds p to the index, or removes it when the file is gone
func stage(w *git.Worktree, repoRoot, p string) error {
	rel, err := filepath.Rel(repoRoot, p)
	if err != nil {
		return err
	}
	if _, err := os.Stat(p); os.IsNotExist(err) {
		_, err = w.Remove(rel)
		return err
	}
	_, err = w.Add(rel)
	return err
}

// Init creates a repository at path and commits everything already there
func Init(path, message string) error {
	repo, err := git.PlainInit(path, false)
	if err != nil {
		return err
	}
	w, err := repo.Worktree()
	if err != nil {
		return err
	}
	if _, err := w.Add("."); err != nil {
		return err
	}
	sig := author
	sig.When = time.Now()
	_, err = w.Commit(message, &git.CommitOptions{Author: &sig})
	return err
}
