package fixtures

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// FetchOptions selects a fixture suite stored in a git repository.
type FetchOptions struct {
	URL      string
	Ref      string
	CacheDir string
}

// Checkout is a fixture suite checked out at a pinned commit.
type Checkout struct {
	Dir    string
	Commit string
}

var commitPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Fetch clones the suite at opts.URL, resolves opts.Ref and checks it out
// under opts.CacheDir. A checkout already present for the resolved commit is
// reused.
func Fetch(ctx context.Context, opts FetchOptions) (*Checkout, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return nil, errors.New("fixtures: git URL required")
	}
	if opts.CacheDir == "" {
		return nil, errors.New("fixtures: cache directory required")
	}
	baseDir := filepath.Join(opts.CacheDir, sanitizePathSegment(url))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("fixtures: create cache: %w", err)
	}

	ref := strings.TrimSpace(opts.Ref)
	if commitPattern.MatchString(ref) {
		existing := filepath.Join(baseDir, ref)
		if _, err := os.Stat(existing); err == nil {
			return &Checkout{Dir: existing, Commit: ref}, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return nil, err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return nil, err
	}

	repo, err := git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{URL: url})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("fixtures: git clone %s: %w", url, err)
	}

	revision, hash, err := resolveRevision(repo, ref)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("fixtures: resolve revision %s: %w", revision, err)
	}

	targetDir := filepath.Join(baseDir, hash.String())
	if _, err := os.Stat(targetDir); err == nil {
		_ = os.RemoveAll(tmpDir)
		return &Checkout{Dir: targetDir, Commit: hash.String()}, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("fixtures: git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, err
	}
	return &Checkout{Dir: targetDir, Commit: hash.String()}, nil
}

// gitRevision maps a user ref to a revision. Empty means HEAD; branch refs
// resolve against the clone's remote-tracking refs.
func gitRevision(ref string) plumbing.Revision {
	switch {
	case ref == "":
		return plumbing.Revision("HEAD")
	case strings.HasPrefix(ref, "refs/heads/"):
		return plumbing.Revision("refs/remotes/origin/" + strings.TrimPrefix(ref, "refs/heads/"))
	case strings.HasPrefix(ref, "heads/"):
		return plumbing.Revision("refs/remotes/origin/" + strings.TrimPrefix(ref, "heads/"))
	case strings.HasPrefix(ref, "tags/"):
		return plumbing.Revision("refs/" + ref)
	}
	return plumbing.Revision(ref)
}

// resolveRevision resolves ref in the clone. A bare name that is not a tag or
// commit falls back to the remote-tracking branch of the same name.
func resolveRevision(repo *git.Repository, ref string) (plumbing.Revision, *plumbing.Hash, error) {
	revision := gitRevision(ref)
	hash, err := repo.ResolveRevision(revision)
	if err == nil || ref == "" || string(revision) != ref || strings.HasPrefix(ref, "refs/") {
		return revision, hash, err
	}
	branch := plumbing.Revision("refs/remotes/origin/" + ref)
	if branchHash, branchErr := repo.ResolveRevision(branch); branchErr == nil {
		return branch, branchHash, nil
	}
	return revision, nil, err
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "suite"
	}
	return b.String()
}
