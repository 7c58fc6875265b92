package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"nexus/admin/internal/assets"
	"nexus/admin/internal/auth"
	"nexus/admin/internal/authpw"
	"nexus/admin/internal/config"
	"nexus/admin/internal/content"
	"nexus/admin/internal/export"
	"nexus/admin/internal/forms"
	"nexus/admin/internal/github"
	"nexus/admin/internal/publish"
	"nexus/admin/internal/reconcile"
	"nexus/admin/internal/render"
	"nexus/admin/internal/search"
	"nexus/admin/internal/session"
	"nexus/admin/internal/store"
	"nexus/admin/internal/util"
)

// FetchResult reports what a GitHub reconcile changed.
type FetchResult struct {
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
	User    string `json:"user"`
}

// EditorState is the editable projection handed to the UI.
type EditorState struct {
	Fields forms.Fields             `json:"fields"`
	Rows   map[string]forms.RowList `json:"rows"`
}

// Service holds the single admin editing session: one document, one editor,
// one credential. The mutex keeps the document single-mutator even though
// HTTP handlers run concurrently.
type Service struct {
	cfg       config.Config
	store     *store.Store
	passwords *authpw.Service
	sessions  session.Store
	github    *github.Client
	search    *search.Service
	publisher *publish.Service
	assets    *assets.Store

	mu     sync.Mutex
	editor *forms.Editor
}

func New(cfg config.Config, contentStore *store.Store, passwords *authpw.Service, sessions session.Store, gh *github.Client, searchService *search.Service, publisher *publish.Service, assetStore *assets.Store) *Service {
	return &Service{
		cfg:       cfg,
		store:     contentStore,
		passwords: passwords,
		sessions:  sessions,
		github:    gh,
		search:    searchService,
		publisher: publisher,
		assets:    assetStore,
	}
}

// Bootstrap loads the document through the fallback cascade, seeds the
// credential, initializes the site repo, and primes the search index.
func (s *Service) Bootstrap(ctx context.Context) error {
	doc := s.store.Load(ctx)

	s.mu.Lock()
	s.editor = forms.NewEditor(doc)
	s.mu.Unlock()

	if err := s.passwords.Bootstrap(ctx, s.cfg.DefaultPassword); err != nil {
		return fmt.Errorf("bootstrap credential: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.EnsureSiteRepo(doc.Clone()); err != nil {
			return fmt.Errorf("ensure site repo: %w", err)
		}
	}

	s.search.Index(search.Extract(doc))
	return nil
}

// Login verifies the password and issues a session token.
func (s *Service) Login(ctx context.Context, password string) (string, time.Time, error) {
	if err := s.passwords.Verify(ctx, password); err != nil {
		if errors.Is(err, authpw.ErrInvalidPassword) {
			return "", time.Time{}, domainError(http.StatusUnauthorized, "INVALID_PASSWORD", "Incorrect password", nil)
		}
		return "", time.Time{}, err
	}

	expiresAt := time.Now().Add(s.cfg.SessionTTL)
	token, err := auth.IssueToken([]byte(s.cfg.TokenSecret), auth.Claims{
		Sub: "admin",
		JTI: util.NewID("jti"),
		Exp: expiresAt.Unix(),
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}

	record := session.Record{Subject: "admin", CreatedAt: time.Now()}
	if err := s.sessions.Save(ctx, auth.HashToken(token), record, expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("save session: %w", err)
	}
	return token, expiresAt, nil
}

// Authenticate validates a bearer token against the session store.
func (s *Service) Authenticate(ctx context.Context, token string) error {
	if _, err := auth.ParseToken([]byte(s.cfg.TokenSecret), token); err != nil {
		return err
	}
	if _, err := s.sessions.Lookup(ctx, auth.HashToken(token)); err != nil {
		return auth.ErrInvalidToken
	}
	return nil
}

func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Revoke(ctx, auth.HashToken(token)); err != nil {
		log.Printf("logout: revoke session: %v", err)
	}
}

func (s *Service) ChangePassword(ctx context.Context, current, next, confirm string) error {
	err := s.passwords.Change(ctx, current, next, confirm)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, authpw.ErrInvalidPassword):
		return domainError(http.StatusUnauthorized, "INVALID_PASSWORD", "Current password is incorrect", nil)
	case errors.Is(err, authpw.ErrPasswordTooShort), errors.Is(err, authpw.ErrPasswordMismatch):
		return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
	default:
		return err
	}
}

// ContentDocument returns a deep copy for read-only consumers. The site
// renderer never sees the editor's live document.
func (s *Service) ContentDocument() *content.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Document().Clone()
}

// Editor returns the current editable projection.
func (s *Service) Editor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EditorState{Fields: s.editor.Fields(), Rows: s.editor.Rows()}
}

// SaveEditor applies submitted UI state, collects it into the document, and
// persists. Collect runs strictly before the document is serialized; a
// storage write failure is surfaced, never swallowed.
func (s *Service) SaveEditor(ctx context.Context, state EditorState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.Apply(state.Fields, state.Rows)
	doc := s.editor.CollectAll()
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	s.search.Index(search.Extract(doc))
	return nil
}

// AddRow appends a defaulted element to a collection, collecting in-flight
// edits first.
func (s *Service) AddRow(state EditorState, collection string) (forms.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.Apply(state.Fields, state.Rows)
	row, err := s.editor.AddRow(collection)
	if err != nil {
		return forms.Row{}, domainError(http.StatusNotFound, "UNKNOWN_COLLECTION", err.Error(), nil)
	}
	return row, nil
}

// RemoveRow removes a collection element by its stable row key, collecting
// in-flight edits first so sibling rows keep theirs.
func (s *Service) RemoveRow(state EditorState, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.Apply(state.Fields, state.Rows)
	if err := s.editor.RemoveRow(collection, key); err != nil {
		if errors.Is(err, forms.ErrUnknownCollection) {
			return domainError(http.StatusNotFound, "UNKNOWN_COLLECTION", err.Error(), nil)
		}
		return domainError(http.StatusNotFound, "ROW_NOT_FOUND", err.Error(), nil)
	}
	return nil
}

// FetchGitHub reconciles the user's repositories into the project list. The
// fetch happens outside the merge: a failed fetch leaves projects.items
// completely unmodified.
func (s *Service) FetchGitHub(ctx context.Context, state EditorState) (FetchResult, error) {
	s.mu.Lock()
	s.editor.Apply(state.Fields, state.Rows)
	doc := s.editor.CollectAll()
	username := doc.Projects.GitHubUsername
	existing := append([]content.Project(nil), doc.Projects.Items...)
	s.mu.Unlock()

	if username == "" {
		return FetchResult{}, domainError(http.StatusUnprocessableEntity, "USERNAME_REQUIRED", "Enter a GitHub username first", nil)
	}

	repos, err := s.github.ListUserRepos(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, github.ErrUserNotFound):
			return FetchResult{}, domainError(http.StatusNotFound, "GITHUB_USER_NOT_FOUND",
				fmt.Sprintf("GitHub user %q not found", username), nil)
		case errors.Is(err, github.ErrRateLimited):
			return FetchResult{}, domainError(http.StatusTooManyRequests, "GITHUB_RATE_LIMITED",
				"GitHub API rate limit reached, try again later", nil)
		default:
			return FetchResult{}, domainError(http.StatusBadGateway, "GITHUB_UNAVAILABLE",
				"GitHub API request failed", err.Error())
		}
	}

	merged := reconcile.MergeGitHubRepos(existing, repos)

	s.mu.Lock()
	s.editor.Document().Projects.Items = merged.Items
	s.editor.PopulateAll()
	saveErr := s.store.Save(ctx, s.editor.Document())
	snapshot := s.editor.Document().Clone()
	s.mu.Unlock()

	if saveErr != nil {
		return FetchResult{}, saveErr
	}
	s.search.Index(search.Extract(snapshot))

	return FetchResult{
		Added:   merged.Added,
		Updated: merged.Updated,
		Total:   len(merged.Items),
		User:    username,
	}, nil
}

// ExportJSON collects the current editor state and serializes it for
// download.
func (s *Service) ExportJSON() (*export.Result, error) {
	s.mu.Lock()
	doc := s.editor.CollectAll().Clone()
	s.mu.Unlock()
	return export.JSON(doc)
}

// ExportPDF collects and prints the rendered site.
func (s *Service) ExportPDF() (*export.Result, error) {
	s.mu.Lock()
	doc := s.editor.CollectAll().Clone()
	s.mu.Unlock()

	result, err := export.PDF(doc)
	if err != nil {
		if errors.Is(err, export.ErrPDFDependencyMissing) {
			return nil, domainError(http.StatusServiceUnavailable, "PDF_UNAVAILABLE", "PDF export requires chromium on the server", nil)
		}
		return nil, err
	}
	return result, nil
}

// Preview renders the current editor state as the site page.
func (s *Service) Preview() ([]byte, error) {
	s.mu.Lock()
	doc := s.editor.CollectAll().Clone()
	s.mu.Unlock()
	return render.Page(doc)
}

// Publish collects, saves, and commits the content file to the site repo.
func (s *Service) Publish(ctx context.Context, state EditorState, message string) (publish.CommitInfo, error) {
	if s.publisher == nil {
		return publish.CommitInfo{}, domainError(http.StatusServiceUnavailable, "PUBLISH_UNAVAILABLE", "Publishing is not configured", nil)
	}

	s.mu.Lock()
	s.editor.Apply(state.Fields, state.Rows)
	doc := s.editor.CollectAll()
	if err := s.store.Save(ctx, doc); err != nil {
		s.mu.Unlock()
		return publish.CommitInfo{}, err
	}
	snapshot := doc.Clone()
	s.mu.Unlock()

	s.search.Index(search.Extract(snapshot))
	return s.publisher.Publish(snapshot, message)
}

func (s *Service) PublishHistory(limit int) ([]publish.CommitInfo, error) {
	if s.publisher == nil {
		return nil, domainError(http.StatusServiceUnavailable, "PUBLISH_UNAVAILABLE", "Publishing is not configured", nil)
	}
	return s.publisher.History(limit)
}

func (s *Service) Search(query, section string, limit int) search.Response {
	return s.search.Search(query, section, limit)
}

// UploadAsset stores an uploaded image and returns its URL.
func (s *Service) UploadAsset(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error) {
	if s.assets == nil {
		return "", domainError(http.StatusServiceUnavailable, "ASSETS_UNAVAILABLE", "Asset storage is not configured", nil)
	}
	url, err := s.assets.UploadImage(ctx, name, contentType, r, size)
	switch {
	case err == nil:
		return url, nil
	case errors.Is(err, assets.ErrTooLarge), errors.Is(err, assets.ErrNotAnImage):
		return "", domainError(http.StatusUnprocessableEntity, "INVALID_UPLOAD", err.Error(), nil)
	default:
		return "", err
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
