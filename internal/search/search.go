// Package search lets the admin find entries across the document's
// collections. Meilisearch is used when configured and healthy; otherwise an
// in-memory match over the current document serves the query.
package search

import (
	"strconv"
	"strings"

	"nexus/admin/internal/content"
)

const (
	SectionServices = "services"
	SectionTeam     = "team"
	SectionBlog     = "blog"
	SectionProjects = "projects"
)

// Entry is one searchable collection element.
type Entry struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

type Response struct {
	Results []Entry `json:"results"`
	Total   int     `json:"total"`
	Query   string  `json:"query"`
}

// Extract flattens the document's collections into searchable entries.
// Entry ids are deterministic so reindexing replaces rather than duplicates.
func Extract(doc *content.Document) []Entry {
	doc = content.Normalize(doc)
	entries := []Entry{}

	for i, s := range doc.Services {
		entries = append(entries, Entry{
			ID:      "service-" + strconv.Itoa(i),
			Section: SectionServices,
			Title:   s.Title,
			Body:    strings.TrimSpace(s.Genre + " " + s.Desc + " " + s.Tech),
		})
	}
	for i, m := range doc.Team {
		entries = append(entries, Entry{
			ID:      "member-" + strconv.Itoa(i),
			Section: SectionTeam,
			Title:   m.Name,
			Body:    m.Role,
		})
	}
	for i, p := range doc.Blog {
		entries = append(entries, Entry{
			ID:      "post-" + strconv.Itoa(i),
			Section: SectionBlog,
			Title:   p.Title,
			Body:    strings.TrimSpace(p.Cat + " " + p.Excerpt),
		})
	}
	for _, p := range doc.Projects.Items {
		entries = append(entries, Entry{
			ID:      p.ID,
			Section: SectionProjects,
			Title:   p.Name,
			Body:    strings.TrimSpace(p.Description + " " + p.Language + " " + strings.Join(p.Topics, " ")),
		})
	}
	return entries
}
