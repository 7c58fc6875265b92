// Package publish maintains the site's git working copy. Exporting writes
// cms-data.json; publishing commits it so a push deploys the updated site.
package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"nexus/admin/internal/content"
	"nexus/admin/internal/store"
)

const (
	dataFile     = store.ExportFilename
	authorName   = "Nexus Admin"
	authorEmail  = "admin@nexus.local"
	mainBranch   = "main"
	historyLimit = 50
)

// CommitInfo describes one published revision.
type CommitInfo struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	When    time.Time `json:"when"`
}

type Service struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Service {
	return &Service{dir: dir}
}

// EnsureSiteRepo initializes the working copy with a baseline commit of the
// given document. A repo that already exists is left alone.
func (s *Service) EnsureSiteRepo(initial *content.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(filepath.Join(s.dir, ".git")); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat repo path: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create repo dir: %w", err)
	}

	repo, err := git.PlainInit(s.dir, false)
	if err != nil {
		return fmt.Errorf("init repo: %w", err)
	}

	hash, err := s.commitDocument(repo, initial, "Site content baseline")
	if err != nil {
		return err
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName(mainBranch), hash)); err != nil {
		return fmt.Errorf("set main branch ref: %w", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(mainBranch))); err != nil {
		return fmt.Errorf("set HEAD to main: %w", err)
	}
	return nil
}

// Publish writes the document into the working copy and commits it.
func (s *Service) Publish(doc *content.Document, message string) (CommitInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo, err := git.PlainOpen(s.dir)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("open repo: %w", err)
	}

	if message == "" {
		message = "Update site content"
	}
	hash, err := s.commitDocument(repo, doc, message)
	if err != nil {
		return CommitInfo{}, err
	}

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read commit: %w", err)
	}
	return infoFromCommit(commit), nil
}

// History lists published revisions, newest first.
func (s *Service) History(limit int) ([]CommitInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo, err := git.PlainOpen(s.dir)
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	history := []CommitInfo{}
	for len(history) < limit {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		history = append(history, infoFromCommit(commit))
	}
	return history, nil
}

func (s *Service) commitDocument(repo *git.Repository, doc *content.Document, message string) (plumbing.Hash, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("open worktree: %w", err)
	}

	payload, err := store.Export(doc)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("marshal content: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, dataFile), payload, 0o644); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("write content file: %w", err)
	}
	if _, err := worktree.Add(dataFile); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("git add content file: %w", err)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("commit content: %w", err)
	}
	return hash, nil
}

func infoFromCommit(commit *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:    commit.Hash.String(),
		Message: commit.Message,
		Author:  commit.Author.Name,
		When:    commit.Author.When,
	}
}
