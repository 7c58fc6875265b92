package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"nexus/admin/internal/content"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client), mr
}

func writeContentFile(t *testing.T, doc *content.Document) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	path := filepath.Join(t.TempDir(), "cms-data.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write content file: %v", err)
	}
	return path
}

func TestLoadPrefersSnapshot(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	fileDoc := content.Default()
	fileDoc.Settings.CompanyName = "FROM FILE"
	path := writeContentFile(t, fileDoc)

	snapDoc := content.Default()
	snapDoc.Settings.CompanyName = "FROM SNAPSHOT"
	data, _ := json.Marshal(snapDoc)
	if err := redisStore.SaveSnapshot(ctx, data); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	doc := New(redisStore, path).Load(ctx)
	if doc.Settings.CompanyName != "FROM SNAPSHOT" {
		t.Errorf("loaded companyName = %q, want FROM SNAPSHOT", doc.Settings.CompanyName)
	}
}

func TestLoadFallsBackToFile(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	fileDoc := content.Default()
	fileDoc.Settings.CompanyName = "FROM FILE"
	path := writeContentFile(t, fileDoc)

	doc := New(redisStore, path).Load(ctx)
	if doc.Settings.CompanyName != "FROM FILE" {
		t.Errorf("loaded companyName = %q, want FROM FILE", doc.Settings.CompanyName)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	doc := New(redisStore, filepath.Join(t.TempDir(), "missing.json")).Load(ctx)
	want := content.Default()
	if doc.Settings.CompanyName != want.Settings.CompanyName {
		t.Errorf("loaded companyName = %q, want default %q", doc.Settings.CompanyName, want.Settings.CompanyName)
	}
}

func TestLoadSkipsCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	if err := redisStore.SaveSnapshot(ctx, []byte("{not json")); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	fileDoc := content.Default()
	fileDoc.Settings.CompanyName = "FROM FILE"
	path := writeContentFile(t, fileDoc)

	doc := New(redisStore, path).Load(ctx)
	if doc.Settings.CompanyName != "FROM FILE" {
		t.Errorf("corrupt snapshot not skipped: companyName = %q", doc.Settings.CompanyName)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	s := New(redisStore, "")
	doc := content.Default()
	doc.Settings.CompanyName = "SAVED"
	doc.Hero.Stat1Val = 7

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := s.Load(ctx)
	if loaded.Settings.CompanyName != "SAVED" {
		t.Errorf("companyName = %q, want SAVED", loaded.Settings.CompanyName)
	}
	if loaded.Hero.Stat1Val != 7 {
		t.Errorf("stat1 = %d, want 7", loaded.Hero.Stat1Val)
	}
}

func TestSaveWithoutBackendFails(t *testing.T) {
	err := New(nil, "").Save(context.Background(), content.Default())
	if !errors.Is(err, ErrStorageWrite) {
		t.Errorf("Save() error = %v, want ErrStorageWrite", err)
	}
}

func TestSaveSurfacesBackendFailure(t *testing.T) {
	ctx := context.Background()
	redisStore, mr := setupRedisStore(t)
	defer redisStore.Close()
	mr.Close()

	err := New(redisStore, "").Save(ctx, content.Default())
	if !errors.Is(err, ErrStorageWrite) {
		t.Errorf("Save() error = %v, want ErrStorageWrite", err)
	}
}

func TestExportIsPrettyAndParseable(t *testing.T) {
	doc := content.Default()
	doc.Settings.CompanyName = "EXPORTED"

	data, err := Export(doc)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("export missing trailing newline")
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("export not indented")
	}

	var parsed content.Document
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("export not parseable: %v", err)
	}
	if parsed.Settings.CompanyName != "EXPORTED" {
		t.Errorf("round-tripped companyName = %q", parsed.Settings.CompanyName)
	}
}

func TestRedisCredentialSlot(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	if _, err := redisStore.LoadCredential(ctx); !errors.Is(err, ErrNoCredential) {
		t.Errorf("LoadCredential on empty slot: error = %v, want ErrNoCredential", err)
	}
	if err := redisStore.SaveCredential(ctx, "hash-value"); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}
	hash, err := redisStore.LoadCredential(ctx)
	if err != nil {
		t.Fatalf("LoadCredential() error = %v", err)
	}
	if hash != "hash-value" {
		t.Errorf("credential = %q, want hash-value", hash)
	}
}

func TestRedisSnapshotEmptySlot(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := setupRedisStore(t)
	defer redisStore.Close()

	if _, err := redisStore.LoadSnapshot(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("LoadSnapshot on empty slot: error = %v, want ErrNoSnapshot", err)
	}
}
