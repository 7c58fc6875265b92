package search

import (
	"log"
	"strings"
	"sync"
)

// Service is the facade that tries Meilisearch first and falls back to an
// in-memory match over the latest indexed entries.
type Service struct {
	meili *Meili

	mu      sync.RWMutex
	entries []Entry
}

// NewService creates a search service. meili may be nil when Meilisearch is
// not configured.
func NewService(meili *Meili) *Service {
	return &Service{meili: meili}
}

// Index replaces the searchable entries. Meilisearch indexing is
// fire-and-forget; the in-memory copy is always kept so the fallback can
// answer.
func (s *Service) Index(entries []Entry) {
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.Reindex(entries); err != nil {
			log.Printf("search: reindex: %v", err)
		}
	}()
}

// Search answers from Meilisearch when healthy, otherwise from memory. It
// never surfaces an error; an unreachable index degrades, it does not break
// the admin.
func (s *Service) Search(query, section string, limit int) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(query, section, limit)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: query}
		}
		log.Printf("search: meilisearch error, falling back to memory: %v", err)
	}

	results := s.memorySearch(query, section, limit)
	return Response{Results: results, Total: len(results), Query: query}
}

func (s *Service) memorySearch(query, section string, limit int) []Entry {
	if limit <= 0 {
		limit = 20
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []Entry{}
	for _, entry := range s.entries {
		if section != "" && entry.Section != section {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(entry.Title), needle) &&
			!strings.Contains(strings.ToLower(entry.Body), needle) {
			continue
		}
		results = append(results, entry)
		if len(results) == limit {
			break
		}
	}
	return results
}

func nonNil(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}
