// Package gitbridge shells out to git for journal versioning. Invocations
// block until git exits; there is no timeout, the operator interrupts a
// hung credential prompt manually.
package gitbridge

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Bridge runs git commands inside the journal root.
type Bridge struct {
	dir string
}

// New returns a Bridge bound to the given directory.
func New(dir string) *Bridge {
	return &Bridge{dir: dir}
}

// IsRepo reports whether the directory is a git repository.
func (b *Bridge) IsRepo() bool {
	_, err := os.Stat(filepath.Join(b.dir, ".git"))
	return err == nil
}

// Init runs git init.
func (b *Bridge) Init(ctx context.Context) error {
	_, err := b.execGit(ctx, "init")
	return err
}

// AddRemote registers the origin remote.
func (b *Bridge) AddRemote(ctx context.Context, url string) error {
	_, err := b.execGit(ctx, "remote", "add", "origin", url)
	return err
}

// Add stages everything under the journal root.
func (b *Bridge) Add(ctx context.Context) error {
	_, err := b.execGit(ctx, "add", ".")
	return err
}

// Commit commits staged changes. A clean tree is not an error: the second
// return value reports whether a commit was actually created.
func (b *Bridge) Commit(ctx context.Context, message string) (bool, error) {
	out, err := b.execGit(ctx, "commit", "-m", message)
	if err != nil {
		if strings.Contains(out, "nothing to commit") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Push pushes the current branch. When the push fails because no upstream
// is configured, it retries once with -u origin <current-branch>.
func (b *Bridge) Push(ctx context.Context) error {
	out, err := b.execGit(ctx, "push")
	if err == nil {
		return nil
	}
	if !needsUpstream(out) {
		return err
	}

	branch, berr := b.CurrentBranch(ctx)
	if berr != nil || branch == "" {
		branch = "main"
	}
	_, err = b.execGit(ctx, "push", "-u", "origin", branch)
	return err
}

// CurrentBranch returns the checked-out branch name.
func (b *Bridge) CurrentBranch(ctx context.Context) (string, error) {
	out, err := b.execGit(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func needsUpstream(out string) bool {
	return strings.Contains(out, "has no upstream branch") || strings.Contains(out, "set-upstream")
}

// execGit executes a git command in the journal root and returns its
// combined output.
func (b *Bridge) execGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = b.dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git %s failed: %w\n%s", args[0], err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}
