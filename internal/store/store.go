package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"nexus/admin/internal/content"
)

// ExportFilename is the name the exported document downloads as; a deployed
// copy of the site reads the same file as its fallback source.
const ExportFilename = "cms-data.json"

// Store is the content document store: durable slot first, static file
// second, hardcoded default last.
type Store struct {
	snap     Snapshotter
	filePath string
}

func New(snap Snapshotter, filePath string) *Store {
	return &Store{snap: snap, filePath: filePath}
}

// Load returns a usable document, always. Each source's failure falls
// through to the next silently; a parse error in one source must not take
// the admin down with it.
func (s *Store) Load(ctx context.Context) *content.Document {
	if s.snap != nil {
		if data, err := s.snap.LoadSnapshot(ctx); err == nil {
			if doc, err := decode(data); err == nil {
				return doc
			} else {
				log.Printf("store: snapshot unreadable, falling back to static file: %v", err)
			}
		} else if err != ErrNoSnapshot {
			log.Printf("store: snapshot load failed, falling back to static file: %v", err)
		}
	}

	if s.filePath != "" {
		if data, err := os.ReadFile(s.filePath); err == nil {
			if doc, err := decode(data); err == nil {
				return doc
			} else {
				log.Printf("store: static file unreadable, using defaults: %v", err)
			}
		}
	}

	return content.Default()
}

// Save serializes the whole document and overwrites the durable slot. Once a
// save has happened the static file is shadowed: Load will prefer the
// snapshot from here on.
func (s *Store) Save(ctx context.Context, doc *content.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if s.snap == nil {
		return fmt.Errorf("%w: no durable backend configured", ErrStorageWrite)
	}
	return s.snap.SaveSnapshot(ctx, data)
}

// Export serializes the document as the pretty-printed download file. Pure,
// no mutation.
func Export(doc *content.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	return s.snap.Ping(ctx)
}

func decode(data []byte) (*content.Document, error) {
	var doc content.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return content.Normalize(&doc), nil
}
