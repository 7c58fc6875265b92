package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"nexus/admin/internal/authpw"
	"nexus/admin/internal/config"
	"nexus/admin/internal/forms"
	"nexus/admin/internal/github"
	"nexus/admin/internal/publish"
	"nexus/admin/internal/search"
	"nexus/admin/internal/session"
	"nexus/admin/internal/store"
)

const testPassword = "test-password"

func newTestService(t *testing.T, githubURL string) *Service {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	snap := store.NewRedisStoreWithClient(client)
	t.Cleanup(func() { _ = snap.Close() })

	cfg := config.Config{
		TokenSecret:     "test-secret",
		DefaultPassword: testPassword,
		SessionTTL:      time.Hour,
	}

	if githubURL == "" {
		githubURL = "http://127.0.0.1:0"
	}

	service := New(
		cfg,
		store.New(snap, ""),
		authpw.NewService(snap),
		session.NewMemoryStore(),
		github.NewClient(githubURL),
		search.NewService(nil),
		publish.New(t.TempDir()),
		nil,
	)
	if err := service.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	return service
}

func newTestServer(t *testing.T, githubURL string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewHTTPServer(newTestService(t, githubURL), "*").Handler())
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{"password": testPassword})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body = %v", resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestHealthAndReady(t *testing.T) {
	server := newTestServer(t, "")

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK || body["ok"] != true {
		t.Errorf("health = %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/ready", "", nil)
	if resp.StatusCode != http.StatusOK || body["status"] != "ready" {
		t.Errorf("ready = %d %v", resp.StatusCode, body)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	server := newTestServer(t, "")

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{"password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if body["code"] != "INVALID_PASSWORD" {
		t.Errorf("code = %v, want INVALID_PASSWORD", body["code"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer(t, "")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/editor"},
		{http.MethodPut, "/api/editor"},
		{http.MethodPost, "/api/projects/fetch"},
		{http.MethodGet, "/api/export/json"},
		{http.MethodPost, "/api/publish"},
		{http.MethodGet, "/api/search"},
	} {
		resp, body := doJSON(t, route.method, server.URL+route.path, "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, body = %v", route.method, route.path, resp.StatusCode, body)
		}
	}
}

func TestContentIsPublic(t *testing.T) {
	server := newTestServer(t, "")

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/content", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, ok := body["settings"]; !ok {
		t.Errorf("content missing settings: %v", body)
	}
}

func TestSessionProbe(t *testing.T) {
	server := newTestServer(t, "")

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/session", "", nil)
	if resp.StatusCode != http.StatusOK || body["authenticated"] != false {
		t.Errorf("anonymous probe = %d %v", resp.StatusCode, body)
	}

	token := login(t, server)
	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/session", token, nil)
	if resp.StatusCode != http.StatusOK || body["authenticated"] != true {
		t.Errorf("authenticated probe = %d %v", resp.StatusCode, body)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/auth/logout", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/editor", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("revoked token accepted: status = %d", resp.StatusCode)
	}
}

func TestEditorSaveRoundTrip(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, editor := doJSON(t, http.MethodGet, server.URL+"/api/editor", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get editor status = %d", resp.StatusCode)
	}
	if _, ok := editor["fields"]; !ok {
		t.Fatalf("editor missing fields: %v", editor)
	}

	payload := map[string]any{
		"fields": map[string]string{
			"s-companyName": "ROUND TRIP STUDIO",
			"h-s1v":         "  250  ",
		},
		"rows": map[string]any{},
	}
	resp, body := doJSON(t, http.MethodPut, server.URL+"/api/editor", token, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put editor status = %d, body = %v", resp.StatusCode, body)
	}

	resp, doc := doJSON(t, http.MethodGet, server.URL+"/api/content", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get content status = %d", resp.StatusCode)
	}
	settings := doc["settings"].(map[string]any)
	if settings["companyName"] != "ROUND TRIP STUDIO" {
		t.Errorf("companyName = %v", settings["companyName"])
	}
	hero := doc["hero"].(map[string]any)
	if hero["stat1Val"] != float64(250) {
		t.Errorf("stat1Val = %v, want 250", hero["stat1Val"])
	}
}

func TestAddAndRemoveRow(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/editor/"+forms.ColTeam, token, map[string]any{})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add row status = %d, body = %v", resp.StatusCode, body)
	}
	row := body["row"].(map[string]any)
	key, _ := row["key"].(string)
	if !strings.HasPrefix(key, "row_") {
		t.Fatalf("row key = %q", key)
	}
	fields := row["fields"].(map[string]any)
	if fields["name"] != "New Member" {
		t.Errorf("new member name = %v", fields["name"])
	}

	resp, body = doJSON(t, http.MethodDelete, server.URL+"/api/editor/"+forms.ColTeam+"/"+key, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove row status = %d, body = %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodDelete, server.URL+"/api/editor/"+forms.ColTeam+"/"+key, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("double remove status = %d, want 404", resp.StatusCode)
	}
	if body["code"] != "ROW_NOT_FOUND" {
		t.Errorf("code = %v, want ROW_NOT_FOUND", body["code"])
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/editor/widgets", token, map[string]any{})
	if resp.StatusCode != http.StatusNotFound || body["code"] != "UNKNOWN_COLLECTION" {
		t.Errorf("unknown collection = %d %v", resp.StatusCode, body)
	}
}

func TestFetchGitHubProjects(t *testing.T) {
	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/ghost/repos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `[{"name":"engine","stargazers_count":42,"forks_count":3,"html_url":"https://github.com/u/engine"}]`)
	}))
	defer gh.Close()

	server := newTestServer(t, gh.URL)
	token := login(t, server)

	// No username set yet.
	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/projects/fetch", token, map[string]any{
		"fields": map[string]string{"proj-githubUser": ""},
	})
	if resp.StatusCode != http.StatusUnprocessableEntity || body["code"] != "USERNAME_REQUIRED" {
		t.Errorf("empty username = %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/projects/fetch", token, map[string]any{
		"fields": map[string]string{"proj-githubUser": "octocat"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("fetch status = %d, body = %v", resp.StatusCode, body)
	}
	if body["added"] != float64(1) || body["user"] != "octocat" {
		t.Errorf("fetch result = %v", body)
	}

	// Unknown user maps to a distinct error.
	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/projects/fetch", token, map[string]any{
		"fields": map[string]string{"proj-githubUser": "ghost"},
	})
	if resp.StatusCode != http.StatusNotFound || body["code"] != "GITHUB_USER_NOT_FOUND" {
		t.Errorf("unknown user = %d %v", resp.StatusCode, body)
	}
}

func TestExportJSONDownload(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/export/json", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("export request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "cms-data.json") {
		t.Errorf("Content-Disposition = %q", got)
	}
}

func TestPreviewRendersHTML(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/preview", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preview request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestPublishAndHistory(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/publish", token, map[string]any{
		"message": "ship hero copy",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish status = %d, body = %v", resp.StatusCode, body)
	}
	commit := body["commit"].(map[string]any)
	if commit["message"] != "ship hero copy" {
		t.Errorf("commit message = %v", commit["message"])
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/publish/history", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history status = %d", resp.StatusCode)
	}
	history := body["history"].([]any)
	if len(history) < 2 {
		t.Errorf("history = %d entries, want baseline + publish", len(history))
	}
}

func TestSearchEndpoint(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/search?q=&section=team", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d", resp.StatusCode)
	}
	results, ok := body["results"].([]any)
	if !ok {
		t.Fatalf("search body = %v", body)
	}
	for _, raw := range results {
		entry := raw.(map[string]any)
		if entry["section"] != "team" {
			t.Errorf("section filter leaked: %v", entry)
		}
	}
}

func TestChangePassword(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/auth/change-password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "a-new-password",
		"confirmPassword": "a-new-password",
	})
	if resp.StatusCode != http.StatusUnauthorized || body["code"] != "INVALID_PASSWORD" {
		t.Errorf("wrong current = %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/auth/change-password", token, map[string]string{
		"currentPassword": testPassword,
		"newPassword":     "short",
		"confirmPassword": "short",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity || body["code"] != "VALIDATION_ERROR" {
		t.Errorf("short password = %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/auth/change-password", token, map[string]string{
		"currentPassword": testPassword,
		"newPassword":     "a-new-password",
		"confirmPassword": "a-new-password",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("change status = %d, body = %v", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{"password": "a-new-password"})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("login with new password: status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{"password": testPassword})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("old password still accepted: status = %d", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t, "")
	token := login(t, server)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/nope", token, nil)
	if resp.StatusCode != http.StatusNotFound || body["code"] != "NOT_FOUND" {
		t.Errorf("unknown route = %d %v", resp.StatusCode, body)
	}
}
